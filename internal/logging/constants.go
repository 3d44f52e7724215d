package logging

// Standard field names for structured log output.
const (
	FieldComponent = "component"
	FieldCommand   = "command"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldBudget    = "budget"
	FieldRemaining = "remaining"
	FieldStatus    = "status"
	FieldFormat    = "format"
	FieldFile      = "file_path"
	FieldCount     = "count"
	FieldReason    = "reason"
)
