package model

// EntityKind names a reference list that fan-outs iterate over.
type EntityKind string

const (
	EntityOrganizations EntityKind = "organizations"
	EntityPlants        EntityKind = "plants"
	EntityBalanceGroups EntityKind = "balance-groups"
	EntityDistributions EntityKind = "distributions"
)

// EntityKinds lists every kind in a stable order.
var EntityKinds = []EntityKind{EntityOrganizations, EntityPlants, EntityBalanceGroups, EntityDistributions}

func (k EntityKind) Valid() bool {
	switch k {
	case EntityOrganizations, EntityPlants, EntityBalanceGroups, EntityDistributions:
		return true
	}
	return false
}

// Entity is a market participant, power plant, balance-responsible group or
// distribution region.
type Entity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`       // EIC code
	ShortName string `json:"short_name"`
	Status    string `json:"status,omitempty"`
}

// Label is the column name used for this entity in merged tables.
func (e Entity) Label() string {
	switch {
	case e.ShortName != "":
		return e.ShortName
	case e.Name != "":
		return e.Name
	default:
		return e.ID
	}
}
