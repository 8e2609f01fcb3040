package models

// DocumentType is one entry of the fixed document category table: a stable
// value stored in the database plus presentation attributes. The table is
// static configuration, not user data.
type DocumentType struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DocumentTypes is the full ordered category table offered when adding a
// document. Values are stable identifiers; labels and icons are for display.
var DocumentTypes = []DocumentType{
	{Value: "id", Label: "ID / Government Document", Icon: "🪪"},
	{Value: "certificate", Label: "Certificate", Icon: "📜"},
	{Value: "receipt", Label: "Receipt / Invoice", Icon: "🧾"},
	{Value: "contract", Label: "Contract / Agreement", Icon: "📝"},
	{Value: "medical", Label: "Medical Record", Icon: "🏥"},
	{Value: "financial", Label: "Financial Document", Icon: "💳"},
	{Value: "warranty", Label: "Warranty / Guarantee", Icon: "🛡️"},
	{Value: "insurance", Label: "Insurance Document", Icon: "📋"},
	{Value: "other", Label: "Other", Icon: "📄"},
}

// ValidDocumentType reports whether value is one of the fixed categories.
func ValidDocumentType(value string) bool {
	for _, t := range DocumentTypes {
		if t.Value == value {
			return true
		}
	}
	return false
}

// DocumentTypeLabel returns the display label for value, or an empty string
// when the value is not part of the table.
func DocumentTypeLabel(value string) string {
	for _, t := range DocumentTypes {
		if t.Value == value {
			return t.Label
		}
	}
	return ""
}
