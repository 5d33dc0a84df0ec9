// Pipeline tracing.

package blockdown

// Printf logs to the logger given with WithLogger, if any.
func (p *parser) Printf(format string, v ...interface{}) {
	if p.logger == nil {
		return
	}
	p.logger.Printf("%s: "+format, append([]interface{}{"blockdown"}, v...)...)
}
