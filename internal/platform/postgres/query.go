package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// First loads the first row matching query into dest; found is false when none match.
func First(ctx context.Context, db *gorm.DB, dest interface{}, query interface{}, args ...interface{}) (bool, error) {
	err := db.WithContext(ctx).Where(query, args...).Order("id").First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateColumns applies cols to the row with id and reloads it into dest
// inside one transaction. found is false when no row has that id.
func UpdateColumns(ctx context.Context, db *gorm.DB, dest interface{}, id int64, cols map[string]interface{}) (bool, error) {
	found := true
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(cols) > 0 {
			res := tx.Model(dest).Where("id = ?", id).Updates(cols)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				found = false
				return nil
			}
		}
		err := tx.First(dest, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// DeleteByID removes the row and reports whether one existed. model is a
// pointer to the zero value of the table's struct.
func DeleteByID(ctx context.Context, db *gorm.DB, model interface{}, id int64) (bool, error) {
	res := db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
