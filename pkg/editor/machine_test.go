package editor

import (
	"errors"
	"testing"

	"github.com/pluqqy/gridedit/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	calls int
	saved [][][]string
	err   error
}

func (s *recordingSaver) Save(path string, g *grid.Grid) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, g.Rows())
	return nil
}

func newMachine(rows [][]string) (*Machine, *recordingSaver) {
	saver := &recordingSaver{}
	return New(grid.New(rows), "data.csv", saver), saver
}

func press(t *testing.T, m *Machine, keys ...Key) {
	t.Helper()
	for _, k := range keys {
		_, err := m.Handle(k)
		require.NoError(t, err, "key %s", k)
	}
}

func typeText(t *testing.T, m *Machine, text string) {
	t.Helper()
	for _, r := range text {
		press(t, m, Char(r))
	}
}

func TestNew_InitialState(t *testing.T) {
	m, _ := newMachine([][]string{{"a"}})

	row, col := m.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.IsType(t, Navigating{}, m.Mode())
	assert.False(t, m.Dirty())
	assert.Equal(t, "data.csv", m.Path())
}

func TestNavigation_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		keys    []Key
		wantRow int
		wantCol int
	}{
		{
			name: "left at column 0 is a no-op",
			rows: [][]string{{"a", "b"}},
			keys: []Key{K(KeyLeft)},
		},
		{
			name: "up at row 0 is a no-op",
			rows: [][]string{{"a"}, {"b"}},
			keys: []Key{K(KeyUp)},
		},
		{
			name:    "right stops at the last column",
			rows:    [][]string{{"a", "b"}, {"c"}},
			keys:    []Key{K(KeyRight), K(KeyRight), K(KeyRight)},
			wantCol: 1,
		},
		{
			name:    "down stops at the last row",
			rows:    [][]string{{"a"}, {"b"}},
			keys:    []Key{K(KeyDown), K(KeyDown), K(KeyDown)},
			wantRow: 1,
		},
		{
			name:    "down onto a shorter row clamps the column",
			rows:    [][]string{{"a", "b", "c"}, {"d"}},
			keys:    []Key{K(KeyRight), K(KeyRight), K(KeyDown)},
			wantRow: 1,
			wantCol: 0,
		},
		{
			name:    "up onto a shorter row clamps the column",
			rows:    [][]string{{"a", "b"}, {"c", "d", "e"}},
			keys:    []Key{K(KeyDown), K(KeyRight), K(KeyRight), K(KeyUp)},
			wantRow: 0,
			wantCol: 1,
		},
		{
			name:    "a zero-length row clamps to column 0",
			rows:    [][]string{{"a", "b"}, {}},
			keys:    []Key{K(KeyRight), K(KeyDown)},
			wantRow: 1,
			wantCol: 0,
		},
		{
			name:    "right is bounded by the widest row, not the current one",
			rows:    [][]string{{"a"}, {"b", "c", "d"}},
			keys:    []Key{K(KeyRight), K(KeyRight)},
			wantCol: 2,
		},
		{
			name: "empty grid ignores all movement",
			rows: nil,
			keys: []Key{K(KeyRight), K(KeyDown), K(KeyUp), K(KeyLeft)},
		},
		{
			name: "unknown keys are ignored",
			rows: [][]string{{"a", "b"}},
			keys: []Key{Char('x'), K(KeyCommit), K(KeyCancel), K(KeyBackspace), K(KeyNone)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMachine(tt.rows)
			press(t, m, tt.keys...)

			row, col := m.Cursor()
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCol, col)
			assert.False(t, m.Editing())
		})
	}
}

func TestEdit_SeedsBufferFromCell(t *testing.T) {
	m, _ := newMachine([][]string{{"a", "b"}, {"c", "d"}})

	press(t, m, K(KeyDown), K(KeyRight), K(KeyEdit))

	e, ok := m.Mode().(Editing)
	require.True(t, ok)
	assert.Equal(t, 1, e.Row)
	assert.Equal(t, 1, e.Col)
	assert.Equal(t, "d", e.Buffer)
}

func TestEdit_Commit(t *testing.T) {
	m, _ := newMachine([][]string{{"a", "b"}, {"c", "d"}})

	press(t, m, K(KeyEdit))
	typeText(t, m, "X")
	press(t, m, K(KeyCommit))

	assert.False(t, m.Editing())
	assert.True(t, m.Dirty())
	assert.Equal(t, [][]string{{"aX", "b"}, {"c", "d"}}, m.Grid().Rows())
}

func TestEdit_CommitEmptyBuffer(t *testing.T) {
	m, _ := newMachine([][]string{{"ab", "c"}})

	press(t, m, K(KeyEdit), K(KeyBackspace), K(KeyBackspace), K(KeyBackspace), K(KeyCommit))

	assert.Equal(t, [][]string{{"", "c"}}, m.Grid().Rows())
	assert.True(t, m.Dirty())
}

func TestEdit_Cancel(t *testing.T) {
	m, saver := newMachine([][]string{{"a", "b"}, {"c", "d"}})
	before := m.Grid().Rows()

	press(t, m, K(KeyEdit))
	typeText(t, m, "zzz")
	press(t, m, K(KeyBackspace), K(KeyCancel))

	assert.False(t, m.Editing())
	assert.False(t, m.Dirty())
	assert.Equal(t, before, m.Grid().Rows())
	assert.Zero(t, saver.calls)
}

func TestEdit_CancelUndoesGrowth(t *testing.T) {
	m, _ := newMachine([][]string{{"a", "b", "c"}, {"d"}})

	press(t, m, K(KeyRight), K(KeyRight), K(KeyDown))
	// cursor is clamped to (1,0); move right again to reach beyond the row
	press(t, m, K(KeyRight), K(KeyRight), K(KeyEdit))
	assert.Equal(t, 3, m.Grid().RowLen(1))

	press(t, m, K(KeyCancel))

	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d"}}, m.Grid().Rows())
}

func TestEdit_AutoGrow(t *testing.T) {
	m, _ := newMachine([][]string{{"a", "b", "c"}, {"d"}})

	press(t, m, K(KeyDown), K(KeyRight), K(KeyRight), K(KeyEdit))
	e, ok := m.Mode().(Editing)
	require.True(t, ok)
	assert.Equal(t, "", e.Buffer)

	typeText(t, m, "new")
	press(t, m, K(KeyCommit))

	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "", "new"}}, m.Grid().Rows())
}

func TestEdit_EmptyGridGrowsFirstCell(t *testing.T) {
	m, _ := newMachine(nil)

	press(t, m, K(KeyEdit))
	typeText(t, m, "hi")
	press(t, m, K(KeyCommit))

	assert.Equal(t, [][]string{{"hi"}}, m.Grid().Rows())
}

func TestEditing_IgnoresNavigationAndCommands(t *testing.T) {
	m, saver := newMachine([][]string{{"a", "b"}, {"c", "d"}})

	press(t, m, K(KeyEdit),
		K(KeyLeft), K(KeyRight), K(KeyUp), K(KeyDown),
		K(KeyWrite), K(KeyQuit), K(KeyEdit), K(KeyNone))

	e, ok := m.Mode().(Editing)
	require.True(t, ok)
	assert.Equal(t, "a", e.Buffer)
	row, col := m.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.Zero(t, saver.calls)
}

func TestEditing_CommandLettersAreText(t *testing.T) {
	m, _ := newMachine([][]string{{""}})

	press(t, m, K(KeyEdit))
	typeText(t, m, "wqe ")
	press(t, m, K(KeyCommit))

	assert.Equal(t, "wqe ", m.Grid().Get(0, 0))
}

func TestEditing_Backspace(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{name: "ascii", start: "abc", want: "ab"},
		{name: "empty buffer", start: "", want: ""},
		{name: "multibyte rune", start: "née", want: "né"},
		{name: "combined grapheme", start: "aé", want: "a"},
		{name: "emoji with modifier", start: "x👍🏽", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMachine([][]string{{tt.start}})

			press(t, m, K(KeyEdit), K(KeyBackspace))

			e, ok := m.Mode().(Editing)
			require.True(t, ok)
			assert.Equal(t, tt.want, e.Buffer)
		})
	}
}

func TestWrite_ClearsDirty(t *testing.T) {
	m, saver := newMachine([][]string{{"a"}})

	press(t, m, K(KeyEdit), Char('b'), K(KeyCommit))
	require.True(t, m.Dirty())

	outcome, err := m.Handle(K(KeyWrite))

	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	assert.False(t, m.Dirty())
	assert.Equal(t, [][][]string{{{"ab"}}}, saver.saved)
}

func TestWrite_SavesEvenWhenClean(t *testing.T) {
	m, saver := newMachine([][]string{{"a"}})

	press(t, m, K(KeyWrite), K(KeyWrite))

	assert.Equal(t, 2, saver.calls)
}

func TestWrite_FailureKeepsDirty(t *testing.T) {
	m, saver := newMachine([][]string{{"a"}})
	press(t, m, K(KeyEdit), Char('b'), K(KeyCommit))
	saver.err = errors.New("disk full")

	outcome, err := m.Handle(K(KeyWrite))

	assert.ErrorIs(t, err, saver.err)
	assert.Equal(t, Continue, outcome)
	assert.True(t, m.Dirty())
	assert.False(t, m.Editing())
}

func TestWrite_NilSaverFails(t *testing.T) {
	m := New(grid.New([][]string{{"a"}}), "data.csv", nil)
	press(t, m, K(KeyEdit), Char('b'), K(KeyCommit))

	outcome, err := m.Handle(K(KeyWrite))

	assert.ErrorIs(t, err, ErrNoSaver)
	assert.Equal(t, Continue, outcome)
	assert.True(t, m.Dirty())
}

func TestQuit_CleanDoesNotSave(t *testing.T) {
	m, saver := newMachine([][]string{{"a"}})

	outcome, err := m.Handle(K(KeyQuit))

	require.NoError(t, err)
	assert.Equal(t, Quit, outcome)
	assert.Zero(t, saver.calls)
}

func TestQuit_DirtySaves(t *testing.T) {
	m, saver := newMachine([][]string{{"a", "b"}, {"c", "d"}})
	press(t, m, K(KeyEdit), Char('X'), K(KeyCommit))

	outcome, err := m.Handle(K(KeyQuit))

	require.NoError(t, err)
	assert.Equal(t, Quit, outcome)
	assert.False(t, m.Dirty())
	require.Len(t, saver.saved, 1)
	assert.Equal(t, [][]string{{"aX", "b"}, {"c", "d"}}, saver.saved[0])
}

func TestQuit_SaveFailureAbortsQuit(t *testing.T) {
	m, saver := newMachine([][]string{{"a"}})
	press(t, m, K(KeyEdit), Char('b'), K(KeyCommit))
	saver.err = errors.New("read-only file system")

	outcome, err := m.Handle(K(KeyQuit))

	assert.Error(t, err)
	assert.Equal(t, Continue, outcome)
	assert.True(t, m.Dirty())
}

func TestSnapshot(t *testing.T) {
	m, _ := newMachine([][]string{{"a", "b"}})
	press(t, m, K(KeyRight), K(KeyEdit), Char('!'))

	snap := m.Snapshot()

	assert.Equal(t, "data.csv", snap.Path)
	assert.Equal(t, 0, snap.Row)
	assert.Equal(t, 1, snap.Col)
	assert.False(t, snap.Dirty)
	e, ok := snap.Mode.(Editing)
	require.True(t, ok)
	assert.Equal(t, "b!", e.Buffer)
	assert.Equal(t, "b", m.Selected())
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "left", K(KeyLeft).String())
	assert.Equal(t, "char('x')", Char('x').String())
	assert.Equal(t, "none", K(KeyNone).String())
}
