package reba

import "fmt"

// Published REBA combination tables. Indexes are component score minus one.
// Out-of-range scores are clamped to the nearest cell instead of rejected, so
// every lookup is total; `reba check` reports inputs that hit the clamp.

// tableA is indexed [neck][trunk][legs].
var tableA = [3][5][4]int{
	{ // neck 1
		{1, 2, 3, 4},
		{2, 3, 4, 5},
		{3, 4, 5, 6},
		{4, 5, 6, 7},
		{5, 6, 7, 8},
	},
	{ // neck 2
		{1, 3, 4, 5},
		{2, 4, 5, 6},
		{3, 5, 6, 7},
		{4, 6, 7, 8},
		{5, 7, 8, 9},
	},
	{ // neck 3
		{3, 3, 5, 6},
		{3, 5, 6, 7},
		{4, 6, 7, 8},
		{5, 7, 8, 9},
		{6, 8, 9, 9},
	},
}

// tableB is indexed [lower arm][upper arm][wrist].
var tableB = [2][6][3]int{
	{ // lower arm 1
		{1, 2, 2},
		{1, 2, 3},
		{3, 4, 5},
		{4, 5, 5},
		{6, 7, 8},
		{7, 8, 8},
	},
	{ // lower arm 2
		{1, 2, 3},
		{2, 3, 4},
		{4, 5, 5},
		{5, 6, 7},
		{7, 8, 8},
		{8, 9, 9},
	},
}

// tableC is indexed [score A][score B].
var tableC = [12][12]int{
	{1, 1, 1, 2, 3, 3, 4, 5, 6, 7, 7, 7},
	{1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 7, 8},
	{2, 3, 3, 3, 4, 5, 6, 7, 7, 8, 8, 8},
	{3, 4, 4, 4, 5, 6, 7, 8, 8, 9, 9, 9},
	{4, 4, 4, 5, 6, 7, 8, 8, 9, 9, 9, 9},
	{6, 6, 6, 7, 8, 8, 9, 9, 10, 10, 10, 10},
	{7, 7, 7, 8, 9, 9, 9, 10, 10, 11, 11, 11},
	{8, 8, 8, 9, 10, 10, 10, 10, 10, 11, 11, 11},
	{9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12, 12},
	{10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12, 12},
	{11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12},
	{12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12},
}

// TableA returns Posture A for neck, trunk and legs scores.
func TableA(neck, trunk, legs int) int {
	return tableA[index(neck, len(tableA))][index(trunk, len(tableA[0]))][index(legs, len(tableA[0][0]))]
}

// TableB returns Posture B for upper arm, lower arm and wrist scores.
func TableB(upperArm, lowerArm, wrist int) int {
	return tableB[index(lowerArm, len(tableB))][index(upperArm, len(tableB[0]))][index(wrist, len(tableB[0][0]))]
}

// TableC combines Score A and Score B.
func TableC(scoreA, scoreB int) int {
	return tableC[index(scoreA, len(tableC))][index(scoreB, len(tableC[0]))]
}

// index maps a 1-based score to a 0-based index in [0, size-1].
func index(score, size int) int {
	return min(max(score-1, 0), size-1)
}

// Bounds is the accepted range of a component score.
type Bounds struct {
	Min, Max int
	// Clamped is true for table-indexed components: values outside
	// [Min, Max] are clamped at lookup. Other components are added to a
	// table result as-is.
	Clamped bool
}

var componentBounds = map[string]Bounds{
	FieldNeck:     {1, len(tableA), true},
	FieldTrunk:    {1, len(tableA[0]), true},
	FieldLegs:     {1, len(tableA[0][0]), true},
	FieldUpperArm: {1, len(tableB[0]), true},
	FieldLowerArm: {1, len(tableB), true},
	FieldWrist:    {1, len(tableB[0][0]), true},
	FieldForce:    {0, 3, false},
	FieldCoupling: {0, 3, false},
	FieldActivity: {0, 3, false},
}

// BoundsFor returns the accepted range of the named component.
func BoundsFor(name string) (Bounds, bool) {
	b, ok := componentBounds[name]
	return b, ok
}

// Table exposes a copy of a lookup table as rows for display. Tables A and B
// are flattened so each row is one (outer, middle) pair.
type Table struct {
	Name    string     `json:"name" yaml:"name"`
	Columns string     `json:"columns" yaml:"columns"`
	Rows    []TableRow `json:"rows" yaml:"rows"`
}

// TableRow is one printed row of a Table.
type TableRow struct {
	Label  string `json:"label" yaml:"label"`
	Values []int  `json:"values" yaml:"values,flow"`
}

// Tables returns display copies of tables A, B and C.
func Tables() []Table {
	a := Table{Name: "Table A", Columns: "legs 1-4"}
	for n := range tableA {
		for t := range tableA[n] {
			a.Rows = append(a.Rows, TableRow{
				Label:  labelf("neck", n, "trunk", t),
				Values: append([]int(nil), tableA[n][t][:]...),
			})
		}
	}

	b := Table{Name: "Table B", Columns: "wrist 1-3"}
	for l := range tableB {
		for u := range tableB[l] {
			b.Rows = append(b.Rows, TableRow{
				Label:  labelf("lower arm", l, "upper arm", u),
				Values: append([]int(nil), tableB[l][u][:]...),
			})
		}
	}

	c := Table{Name: "Table C", Columns: "score B 1-12"}
	for s := range tableC {
		c.Rows = append(c.Rows, TableRow{
			Label:  labelf("score A", s, "", 0),
			Values: append([]int(nil), tableC[s][:]...),
		})
	}

	return []Table{a, b, c}
}

func labelf(outer string, i int, inner string, j int) string {
	if inner == "" {
		return fmt.Sprintf("%s %d", outer, i+1)
	}
	return fmt.Sprintf("%s %d, %s %d", outer, i+1, inner, j+1)
}
