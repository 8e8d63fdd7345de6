package pdf

// DisabledExporter is the Exporter used when no engine is configured.
// Every call reports ErrEngineUnavailable.
type DisabledExporter struct{}

// NewDisabledExporter creates an exporter that always declines.
func NewDisabledExporter() *DisabledExporter {
	return &DisabledExporter{}
}

// Available reports the missing engine.
func (e *DisabledExporter) Available() error {
	return ErrEngineUnavailable
}

// Render always fails with ErrEngineUnavailable.
func (e *DisabledExporter) Render(_ Document) ([]byte, error) {
	return nil, ErrEngineUnavailable
}
