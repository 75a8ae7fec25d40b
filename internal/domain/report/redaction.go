package report

// ViewerRole is the role of the user a report is rendered for. It arrives
// from the auth layer; the reporting code trusts it but never exposes more
// than the role is entitled to see.
type ViewerRole string

const (
	ViewerRoleOwner    ViewerRole = "owner"
	ViewerRoleStaff    ViewerRole = "staff"
	ViewerRoleSupplier ViewerRole = "supplier"
	ViewerRoleCompany  ViewerRole = "company"
	ViewerRoleVehicle  ViewerRole = "vehicle"
)

// IsValid checks if the role is a known ViewerRole
func (r ViewerRole) IsValid() bool {
	switch r {
	case ViewerRoleOwner, ViewerRoleStaff, ViewerRoleSupplier, ViewerRoleCompany, ViewerRoleVehicle:
		return true
	}
	return false
}

// CanViewNetProfit is the single redaction rule for net profit. Only the
// owning side of the business (owner accounts and supplier principals) may
// see it; for every other role the report layer must null the field before
// the response leaves the server.
func (r ViewerRole) CanViewNetProfit() bool {
	return r == ViewerRoleOwner || r == ViewerRoleSupplier
}
