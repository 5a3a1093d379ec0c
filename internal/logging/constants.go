package logging

// Field names shared by every log statement so output can be filtered consistently.
const (
	FieldFormat     = "format"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldDirectory  = "directory"
	FieldCount      = "count"
	FieldLine       = "line"
	FieldDelimiter  = "delimiter"
	FieldBytes      = "bytes"
	FieldWorkers    = "workers"
	FieldDuration   = "duration_ms"
	FieldOperation  = "operation"
)
