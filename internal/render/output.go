package render

// output — буфер результата; перед каждым переводом строки срезает
// хвостовые пробелы и табы.
type output struct {
	buf []byte
}

func (o *output) WriteString(s string) {
	o.buf = append(o.buf, s...)
}

func (o *output) newline(indent int) {
	n := len(o.buf)
	for n > 0 && (o.buf[n-1] == ' ' || o.buf[n-1] == '\t') {
		n--
	}
	o.buf = o.buf[:n]
	o.buf = append(o.buf, '\n')
	for range indent {
		o.buf = append(o.buf, ' ')
	}
}

func (o *output) String() string {
	return string(o.buf)
}
