package logx

const (
	FieldAppName    = "app-name"
	FieldDurationMs = "duration-ms"
	FieldError      = "error"
	FieldOutputFile = "output-file"
	FieldShopCount  = "shop-count"
	FieldShopUUID   = "shop-uuid"
	FieldSourceDir  = "source-dir"
	FieldStack      = "stack"
	FieldTraceID    = "trace-id"
)
