package keys

// Row is one horizontal line of keys, left to right.
type Row []Key

// Layout is the full keyboard, top row first.
type Layout []Row

var qwerty = Layout{
	{
		Shifted('`', '~'),
		Shifted('1', '!'),
		Shifted('2', '@'),
		Shifted('3', '#'),
		Shifted('4', '$'),
		Shifted('5', '%'),
		Shifted('6', '^'),
		Shifted('7', '&'),
		Shifted('8', '*'),
		Shifted('9', '('),
		Shifted('0', ')'),
		Shifted('-', '_'),
		Shifted('=', '+'),
		Do(ActionBackspace),
	},
	{
		Do(ActionTab),
		Char('q'), Char('w'), Char('e'), Char('r'), Char('t'),
		Char('y'), Char('u'), Char('i'), Char('o'), Char('p'),
		Shifted('[', '{'),
		Shifted(']', '}'),
		Shifted('\\', '|'),
	},
	{
		Do(ActionCapsLock),
		Char('a'), Char('s'), Char('d'), Char('f'), Char('g'),
		Char('h'), Char('j'), Char('k'), Char('l'),
		Shifted(';', ':'),
		Shifted('\'', '"'),
		Do(ActionEnter),
	},
	{
		Shift(SideLeft),
		Char('z'), Char('x'), Char('c'), Char('v'), Char('b'),
		Char('n'), Char('m'),
		Shifted(',', '<'),
		Shifted('.', '>'),
		Shifted('/', '?'),
		Shift(SideRight),
	},
	{
		Do(ActionCtrl),
		Do(ActionAlt),
		Char(' '),
		Do(ActionAlt),
		Do(ActionCtrl),
	},
}

// Default returns the QWERTY layout. Each call returns a new copy.
func Default() Layout {
	out := make(Layout, len(qwerty))
	for i, row := range qwerty {
		out[i] = append(Row(nil), row...)
	}
	return out
}

// Len is the total number of key positions.
func (l Layout) Len() int {
	n := 0
	for _, row := range l {
		n += len(row)
	}
	return n
}

// At returns the key at row, col and false when out of range.
func (l Layout) At(row, col int) (Key, bool) {
	if row < 0 || row >= len(l) || col < 0 || col >= len(l[row]) {
		return nil, false
	}
	return l[row][col], true
}

// Find returns the position of the first key equal to k.
func (l Layout) Find(k Key) (row, col int, ok bool) {
	for r, keys := range l {
		for c, candidate := range keys {
			if candidate == k {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// RowWidth sums the key widths of a row.
func (l Layout) RowWidth(row int) float64 {
	if row < 0 || row >= len(l) {
		return 0
	}
	var w float64
	for _, k := range l[row] {
		w += Width(k)
	}
	return w
}

// MaxRowWidth is the width of the widest row.
func (l Layout) MaxRowWidth() float64 {
	var max float64
	for r := range l {
		if w := l.RowWidth(r); w > max {
			max = w
		}
	}
	return max
}
