package enum

// Permission is a capability tag gating one feature area of the console.
type Permission string

const (
	// PermissionAll is the unrestricted capability: a role holding it
	// passes every permission check.
	PermissionAll Permission = "all"

	PermissionDashboard    Permission = "dashboard"
	PermissionImportOrders Permission = "import-orders"
	PermissionProcurement  Permission = "procurement"
	PermissionInventory    Permission = "inventory"
	PermissionRetailSales  Permission = "retail-sales"
	PermissionLogistics    Permission = "logistics"
	PermissionFinance      Permission = "finance"
	PermissionHR           Permission = "hr"

	// PermissionSales is a legacy tag still carried by older role rows;
	// new seeds use retail-sales.
	PermissionSales Permission = "sales"
)

// Valid reports whether the tag is part of the closed enumeration.
func (p Permission) Valid() bool {
	switch p {
	case PermissionAll, PermissionDashboard, PermissionImportOrders,
		PermissionProcurement, PermissionInventory, PermissionRetailSales,
		PermissionLogistics, PermissionFinance, PermissionHR, PermissionSales:
		return true
	}
	return false
}

// PermissionList is the serialized form of a role's capabilities. It is
// stored as a JSON array on the role row.
type PermissionList []Permission

// Set builds a capability set for membership tests.
func (l PermissionList) Set() PermissionSet {
	set := PermissionSet{tags: make(map[Permission]struct{}, len(l))}
	for _, p := range l {
		if p == PermissionAll {
			set.unrestricted = true
			continue
		}
		set.tags[p] = struct{}{}
	}
	return set
}

// PermissionSet answers capability membership queries for one role.
type PermissionSet struct {
	unrestricted bool
	tags         map[Permission]struct{}
}

// Unrestricted reports whether the set carries the wildcard capability.
func (s PermissionSet) Unrestricted() bool {
	return s.unrestricted
}

// Has reports whether the set grants the given permission, either exactly
// or through the unrestricted wildcard.
func (s PermissionSet) Has(p Permission) bool {
	if s.unrestricted {
		return true
	}
	_, ok := s.tags[p]
	return ok
}
