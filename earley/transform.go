package earley

// Transform converts a recognizer chart from "completed-at" indexing to
// "originated-at" indexing: first drop every incomplete item, then move
// each surviving item from its chart state into the state named by its
// origin, rewriting origin to the state it used to live in. After this
// runs, state p holds complete items that started matching at p; an
// item's (rewritten) origin names the state the match ended in. This is
// the inversion step that lets a top-down extractor walk the chart
// left to right instead of chasing backpointers, the way Earley's own
// 1970 paper and most treatments since (e.g. Grune & Jacobs, "Parsing
// Techniques", ch. 7) derive a parse forest from the recognizer's chart.
func Transform(chart Chart) Chart {
	out := newChart(chart.Len() - 1)
	for i, items := range chart {
		for _, it := range items.items() {
			if !it.Complete() {
				continue
			}
			out[it.Origin].add(Item{Rule: it.Rule, Dot: it.Dot, Origin: i})
		}
	}
	return out
}
