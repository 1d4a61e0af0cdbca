package earley

func dumpState(chart Chart, stateno int) {
	items := chart.State(stateno)
	tracer().Debugf("--- State %04d %s", stateno, itemSetString(items))
	for n, item := range items {
		tracer().Debugf("[%2d] %s", n, item)
	}
}

func itemSetString(items []Item) string {
	s := "{"
	for i, item := range items {
		if i > 0 {
			s += ", "
		} else {
			s += " "
		}
		s += item.String()
	}
	return s + " }"
}
