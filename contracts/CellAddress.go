package contracts

// CellAddressParser converts between A1 notation and zero-based coordinates
type CellAddressParser interface {
	Parse(address string) (row int, col int, err error)
	Format(row int, col int) string
}
