package tensor

import "fmt"

// Long is a dense row-major matrix of int64 ids, the padded output form of
// the preprocessing pipeline. Shape is fixed at construction.
type Long struct {
	Rows, Cols int
	Data       []int64
}

func NewLong(rows, cols int) *Long {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid shape: %dx%d", rows, cols))
	}
	return &Long{Rows: rows, Cols: cols, Data: make([]int64, rows*cols)}
}

func (m *Long) Dims() (int, int) {
	return m.Rows, m.Cols
}

func (m *Long) At(i, j int) int64 {
	m.check(i, j)
	return m.Data[i*m.Cols+j]
}

func (m *Long) Set(i, j int, v int64) {
	m.check(i, j)
	m.Data[i*m.Cols+j] = v
}

// Row returns a view of row i; mutations are visible in the matrix.
func (m *Long) Row(i int) []int64 {
	if i < 0 || i >= m.Rows {
		panic(fmt.Sprintf("row %d out of range [0,%d)", i, m.Rows))
	}
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

func (m *Long) Fill(v int64) {
	for i := range m.Data {
		m.Data[i] = v
	}
}

func (m *Long) check(i, j int) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("index (%d,%d) out of range %dx%d", i, j, m.Rows, m.Cols))
	}
}

// Bool is a dense row-major boolean matrix, used for padding masks. It
// shares the Long shape contract.
type Bool struct {
	Rows, Cols int
	Data       []bool
}

func NewBool(rows, cols int) *Bool {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid shape: %dx%d", rows, cols))
	}
	return &Bool{Rows: rows, Cols: cols, Data: make([]bool, rows*cols)}
}

func (m *Bool) Dims() (int, int) {
	return m.Rows, m.Cols
}

func (m *Bool) At(i, j int) bool {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("index (%d,%d) out of range %dx%d", i, j, m.Rows, m.Cols))
	}
	return m.Data[i*m.Cols+j]
}

func (m *Bool) Set(i, j int, v bool) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("index (%d,%d) out of range %dx%d", i, j, m.Rows, m.Cols))
	}
	m.Data[i*m.Cols+j] = v
}
