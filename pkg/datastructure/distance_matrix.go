package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// DistanceMatrix is a dense n*n distance table over the sorted location universe.
// dist[i*n+j] is the distance from ids[i] to ids[j], +Inf if unreachable.
type DistanceMatrix struct {
	idMap IDMap
	n     int
	dist  []float64
}

// NewDistanceMatrix returns a matrix with 0 on the diagonal and +Inf everywhere else.
func NewDistanceMatrix(ids []LocationID) *DistanceMatrix {
	idMap := NewIDMap(ids)
	n := idMap.Len()
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				dist[i*n+j] = math.Inf(1)
			}
		}
	}
	return &DistanceMatrix{
		idMap: idMap,
		n:     n,
		dist:  dist,
	}
}

func (m *DistanceMatrix) NumberOfLocations() int {
	return m.n
}

func (m *DistanceMatrix) GetIDs() []LocationID {
	return m.idMap.GetIDs()
}

func (m *DistanceMatrix) GetIndex(id LocationID) (Index, bool) {
	return m.idMap.GetIndex(id)
}

func (m *DistanceMatrix) GetID(i Index) LocationID {
	return m.idMap.GetID(i)
}

func (m *DistanceMatrix) Get(i, j Index) float64 {
	return m.dist[int(i)*m.n+int(j)]
}

func (m *DistanceMatrix) GetByID(a, b LocationID) (float64, bool) {
	i, ok := m.idMap.GetIndex(a)
	if !ok {
		return 0, false
	}
	j, ok := m.idMap.GetIndex(b)
	if !ok {
		return 0, false
	}
	return m.Get(i, j), true
}

// SetSymmetric writes d to both (i,j) and (j,i).
func (m *DistanceMatrix) SetSymmetric(i, j Index, d float64) {
	m.dist[int(i)*m.n+int(j)] = d
	m.dist[int(j)*m.n+int(i)] = d
}

// Row returns the backing slice of row i. callers must not modify it.
func (m *DistanceMatrix) Row(i Index) []float64 {
	start := int(i) * m.n
	return m.dist[start : start+m.n]
}

func (m *DistanceMatrix) ForEachPair(handle func(i, j Index, d float64)) {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			handle(Index(i), Index(j), m.dist[i*m.n+j])
		}
	}
}

// UnreachablePairs returns each unordered pair (a < b) whose distance is +Inf.
func (m *DistanceMatrix) UnreachablePairs() [][2]LocationID {
	pairs := make([][2]LocationID, 0)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if math.IsInf(m.dist[i*m.n+j], 1) {
				pairs = append(pairs, [2]LocationID{m.idMap.GetID(Index(i)), m.idMap.GetID(Index(j))})
			}
		}
	}
	return pairs
}

func (m *DistanceMatrix) Clone() *DistanceMatrix {
	return &DistanceMatrix{
		idMap: m.idMap,
		n:     m.n,
		dist:  append([]float64(nil), m.dist...),
	}
}

/*
WriteMatrix writes the matrix as a bzip2 compressed text file:

	n
	id_0 id_1 ... id_{n-1}
	row 0 distances
	...
	row n-1 distances

unreachable entries are written as "+Inf".
*/
func (m *DistanceMatrix) WriteMatrix(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	defer w.Flush()

	if err := m.writeTo(w); err != nil {
		return err
	}
	return w.Flush()
}

func (m *DistanceMatrix) writeTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n", m.n); err != nil {
		return err
	}

	for i := 0; i < m.n; i++ {
		fmt.Fprintf(w, "%d", m.idMap.GetID(Index(i)))
		if i < m.n-1 {
			fmt.Fprintf(w, " ")
		}
	}
	fmt.Fprintf(w, "\n")

	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			fmt.Fprintf(w, "%s", strconv.FormatFloat(m.dist[i*m.n+j], 'f', -1, 64))
			if j < m.n-1 {
				fmt.Fprintf(w, " ")
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func ReadMatrix(filename string) (*DistanceMatrix, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return readFrom(bufio.NewReader(bz))
}

func readFrom(br *bufio.Reader) (*DistanceMatrix, error) {
	readLine := func() (string, error) {
		line, err := br.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("invalid matrix size %q: %w", line, err)
	}

	line, err = readLine()
	if err != nil {
		return nil, err
	}
	idFields := strings.Fields(line)
	if len(idFields) != n {
		return nil, fmt.Errorf("expected %d location ids, got %d", n, len(idFields))
	}
	ids := make([]LocationID, n)
	for i, s := range idFields {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid location id %q: %w", s, err)
		}
		ids[i] = LocationID(id)
	}

	m := NewDistanceMatrix(ids)
	if m.n != n {
		return nil, fmt.Errorf("duplicate location ids in matrix header")
	}
	for i, id := range ids {
		if m.idMap.GetID(Index(i)) != id {
			return nil, fmt.Errorf("matrix header ids are not in ascending order")
		}
	}
	for i := 0; i < n; i++ {
		line, err = readLine()
		if err != nil {
			return nil, fmt.Errorf("reading matrix row %d: %w", i, err)
		}
		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, fmt.Errorf("matrix row %d: expected %d values, got %d", i, n, len(fields))
		}
		for j, s := range fields {
			d, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix row %d col %d: %w", i, j, err)
			}
			m.dist[i*n+j] = d
		}
	}
	return m, nil
}
