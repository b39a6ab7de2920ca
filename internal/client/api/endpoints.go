package api

import "strings"

// Endpoints holds the URL of each backend function.
type Endpoints struct {
	Auth          string `json:"auth"`
	AdminAuth     string `json:"admin_auth"`
	AdminUsers    string `json:"admin_users"`
	Profile       string `json:"profile"`
	Transactions  string `json:"transactions"`
	Goals         string `json:"goals"`
	Organizations string `json:"organizations"`
}

// EndpointsFromBase lays the functions out under a single base URL.
func EndpointsFromBase(base string) Endpoints {
	base = strings.TrimRight(base, "/")
	return Endpoints{
		Auth:          base + "/auth",
		AdminAuth:     base + "/admin/auth",
		AdminUsers:    base + "/admin/users",
		Profile:       base + "/user",
		Transactions:  base + "/transactions",
		Goals:         base + "/goals",
		Organizations: base + "/organizations",
	}
}

// Merge returns e with every empty URL taken from defaults.
func (e Endpoints) Merge(defaults Endpoints) Endpoints {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Endpoints{
		Auth:          pick(e.Auth, defaults.Auth),
		AdminAuth:     pick(e.AdminAuth, defaults.AdminAuth),
		AdminUsers:    pick(e.AdminUsers, defaults.AdminUsers),
		Profile:       pick(e.Profile, defaults.Profile),
		Transactions:  pick(e.Transactions, defaults.Transactions),
		Goals:         pick(e.Goals, defaults.Goals),
		Organizations: pick(e.Organizations, defaults.Organizations),
	}
}
