package models

// TargetRow is one line of the ledger-import CSV. A nil field is written as an
// empty cell. Outflow and Inflow are mutually exclusive.
type TargetRow struct {
	Date     *string `csv:"Date"`
	Payee    *string `csv:"Payee"`
	Category *string `csv:"Category"`
	Memo     *string `csv:"Memo"`
	Outflow  *Amount `csv:"Outflow"`
	Inflow   *Amount `csv:"Inflow"`
}

// Text returns a pointer to s, for populating optional TargetRow fields.
func Text(s string) *string {
	return &s
}

// Values returns the row's cells in schema order, with unset fields as "".
func (r TargetRow) Values() []string {
	return []string{
		deref(r.Date),
		deref(r.Payee),
		deref(r.Category),
		deref(r.Memo),
		amountString(r.Outflow),
		amountString(r.Inflow),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func amountString(a *Amount) string {
	if a == nil {
		return ""
	}
	return a.String()
}
