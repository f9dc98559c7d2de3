package query

// Index table and column names. These form the contract with the pre-built
// index; the store's embedded schema creates the same layout for fixtures.
const (
	Table = "jurisprudencia_fts"

	ColFileName     = "nome_arquivo"
	ColYear         = "ano"
	ColChamber      = "camara"
	ColRulingNumber = "acordao"
	ColCaseNumber   = "processo"
	ColFullText     = "texto_completo"

	// FullTextColumn is the zero-based index of ColFullText, as snippet()
	// addresses columns by position.
	FullTextColumn = 5
)
