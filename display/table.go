package display

import "sort"

// ColumnsFromRecords turns rows of records, typically one Extract result
// per object, into columns. Columns follow the first-seen order of record
// names and every row contributes one value to every column, nil where the
// row has no record of that name.
func ColumnsFromRecords(rows ...[]Record) []*Column {
	var cols []*Column
	index := make(map[string]int)

	for _, row := range rows {
		for _, rec := range row {
			if _, ok := index[rec.Name()]; ok {
				continue
			}
			index[rec.Name()] = len(cols)
			cols = append(cols, NewOrderedColumn(rec.Name(), rec.DataType(), len(cols)+1))
		}
	}

	for _, row := range rows {
		seen := make([]bool, len(cols))
		for _, rec := range row {
			i := index[rec.Name()]
			if seen[i] {
				continue
			}
			seen[i] = true
			cols[i].AddValue(rec.RawValue())
		}
		for i, ok := range seen {
			if !ok {
				cols[i].AddValue(nil)
			}
		}
	}

	return cols
}

// SortColumns orders cols by Order, keeping the relative order of equal
// positions.
func SortColumns(cols []*Column) {
	sort.SliceStable(cols, func(i, j int) bool {
		return cols[i].Order() < cols[j].Order()
	})
}
