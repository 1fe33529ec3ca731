package logging

// Standardized field names for structured logging.
const (
	FieldFile          = "file_path"
	FieldTransactionID = "transaction_id"
	FieldKind          = "transaction_type"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldCount         = "count"
	FieldDelimiter     = "delimiter"
	FieldFormat        = "format"
	FieldOutputFile    = "output_file"
	FieldComponent     = "component"
)
