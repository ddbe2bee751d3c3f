package domain

// Company represents a bookkeeping client: the entity whose ledger entries are
// recorded and whose annual balance sheet is derived.
type Company struct {
	CompanyID          string   `json:"companyID"` // Primary Key (UUID)
	Name               string   `json:"name"`
	RUT                string   `json:"rut"`              // Chilean tax identifier
	Address            string   `json:"address"`          // Optional
	Commune            string   `json:"commune"`          // Optional
	BusinessActivity   string   `json:"businessActivity"` // Optional ("giro")
	CustomAccountTypes []string `json:"customAccountTypes"`
	AuditFields
}
