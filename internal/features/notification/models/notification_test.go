package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trading-platform-backend/internal/common/optional"
)

func TestNewNotificationIsUnreadByDefault(t *testing.T) {
	n := NewNotification(CreateNotificationRequest{UserID: 1, Type: "info", Title: "t", Message: "m"}, 1, time.Now())
	assert.False(t, n.IsRead)

	read := true
	n = NewNotification(CreateNotificationRequest{UserID: 1, Type: "info", Title: "t", Message: "m", IsRead: &read}, 2, time.Now())
	assert.True(t, n.IsRead)
}

func TestUpdateNotificationValidate(t *testing.T) {
	assert.NoError(t, (&UpdateNotificationRequest{IsRead: optional.Some(true)}).Validate())
	assert.NoError(t, (&UpdateNotificationRequest{}).Validate())

	assert.Error(t, (&UpdateNotificationRequest{Type: optional.Some("alert")}).Validate())
	assert.Error(t, (&UpdateNotificationRequest{Title: optional.Some("  ")}).Validate())
	assert.Error(t, (&UpdateNotificationRequest{IsRead: optional.Null[bool]()}).Validate())
}

func TestUpdateNotificationColumns(t *testing.T) {
	assert.Empty(t, (&UpdateNotificationRequest{}).Columns())

	cols := (&UpdateNotificationRequest{Title: optional.Some("New"), IsRead: optional.Some(false)}).Columns()
	assert.Equal(t, map[string]interface{}{"title": "New", "is_read": false}, cols)
}

func TestUpdateNotificationApplyTo(t *testing.T) {
	created := time.Now().UTC()
	n := Notification{ID: 1, UserID: 1, Type: "info", Title: "Old", Message: "m", CreatedAt: created}

	req := UpdateNotificationRequest{Title: optional.Some("New"), IsRead: optional.Some(true)}
	req.ApplyTo(&n)

	assert.Equal(t, "New", n.Title)
	assert.Equal(t, "m", n.Message)
	assert.True(t, n.IsRead)
	assert.Equal(t, created, n.CreatedAt)
}
