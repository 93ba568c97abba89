package models

// Tier описывает уровень торгового аккаунта
// @Description Уровень аккаунта
type Tier struct {
	Name     string   `json:"name" example:"Silver"`
	Price    int64    `json:"price" example:"1500" description:"Стоимость перехода в USD"`
	Bonus    int64    `json:"bonus" example:"500" description:"Бонус в USD"`
	Features []string `json:"features"`
}

// DefaultTier назначается новым пользователям
const DefaultTier = "Bronze"

// Catalog is ordered from the entry tier upwards.
var Catalog = []Tier{
	{
		Name:  "Bronze",
		Price: 500,
		Features: []string{
			"24x7 Support", "Professional Charts", "Trading Alerts", "Trading Central Bronze",
		},
	},
	{
		Name:  "Silver",
		Price: 1500,
		Bonus: 500,
		Features: []string{
			"24x7 Support", "Professional Charts", "Trading Alerts", "Trading Central Silver",
		},
	},
	{
		Name:  "Gold",
		Price: 3000,
		Bonus: 850,
		Features: []string{
			"24x7 Support", "Professional Charts", "Trading Alerts", "Trading Central Gold",
			"Live Trading With Experts", "SMS & Email Alerts",
		},
	},
	{
		Name:  "Platinum",
		Price: 4500,
		Bonus: 1500,
		Features: []string{
			"24x7 Support", "Professional Charts", "Trading Alerts", "Trading Central Gold",
			"Live Trading With Experts", "SMS & Email Alerts",
		},
	},
	{
		Name:  "Diamond",
		Price: 50000,
		Bonus: 35000,
		Features: []string{
			"24x7 Support", "Professional Charts", "Trading Alerts", "Trading Central Gold",
			"Live Trading With Experts", "Priority Support",
		},
	},
}

// Names returns tier names in catalog order.
func Names() []string {
	names := make([]string, len(Catalog))
	for i, t := range Catalog {
		names[i] = t.Name
	}
	return names
}

// Lookup finds a tier by its exact name.
func Lookup(name string) (Tier, bool) {
	for _, t := range Catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Tier{}, false
}
