package store

// Merge applies the upsert semantics shared by every backend: for each
// incoming order, overwrite the first existing row with the same Pedido,
// otherwise append. Duplicate keys already in the table are not an error;
// only the first match is touched. Returns the merged table and counters.
func Merge(table, incoming []Order) ([]Order, UpsertStats) {
	var stats UpsertStats

	for _, rec := range incoming {
		found := false
		for i := range table {
			if table[i].Pedido == rec.Pedido {
				table[i] = rec
				stats.Updated++
				found = true
				break
			}
		}
		if !found {
			table = append(table, rec)
			stats.Inserted++
		}
	}
	return table, stats
}
