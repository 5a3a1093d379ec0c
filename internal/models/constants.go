package models

// Target schema column names, in output order.
const (
	ColumnDate     = "Date"
	ColumnPayee    = "Payee"
	ColumnCategory = "Category"
	ColumnMemo     = "Memo"
	ColumnOutflow  = "Outflow"
	ColumnInflow   = "Inflow"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
