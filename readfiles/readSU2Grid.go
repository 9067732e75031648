package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/types"
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE          SU2ElementType = 3
	ELType_Triangle                     = 5
	ELType_Quadrilateral                = 9
)

// BCEdges lists the boundary edges found under each marker tag
type BCEdges map[string][]types.EdgeInt

func readBCs(reader *bufio.Reader) (bcs BCEdges) {
	var (
		nType  int
		v1, v2 int
		err    error
	)
	NBCs := readNumber(reader)
	bcs = make(BCEdges, NBCs)
	for n := 0; n < NBCs; n++ {
		// Repeated tags are merged
		label := readLabel(reader)
		nEdges := readNumber(reader)
		for i := 0; i < nEdges; i++ {
			line := getLine(reader)
			if _, err = fmt.Sscanf(line, "%d %d %d", &nType, &v1, &v2); err != nil {
				panic(err)
			}
			if SU2ElementType(nType) != ELType_LINE {
				panic("BCs should only contain line elements in 2D")
			}
			bcs[label] = append(bcs[label], types.NewEdgeInt([2]int{v1, v2}))
		}
	}
	return
}

func readVertices(reader *bufio.Reader) (nodes []geometry2D.Point) {
	var (
		n    int
		x, y float64
		err  error
	)
	Nv := readNumber(reader)
	nodes = make([]geometry2D.Point, Nv)
	for i := 0; i < Nv; i++ {
		line := getLine(reader)
		if n, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			panic(err)
		}
		if n != 2 {
			panic("unable to read coordinates")
		}
		nodes[i] = geometry2D.NewPoint(x, y)
	}
	return
}

// readElements accepts triangles and quadrilaterals, the trailing element index is ignored
func readElements(reader *bufio.Reader) (K int, EToV [][]int) {
	var (
		nType int
		err   error
	)
	K = readNumber(reader)
	EToV = make([][]int, K)
	for k := 0; k < K; k++ {
		fields := strings.Fields(getLine(reader))
		if len(fields) == 0 {
			panic(fmt.Errorf("empty element line %d", k))
		}
		if _, err = fmt.Sscanf(fields[0], "%d", &nType); err != nil {
			panic(err)
		}
		var nv int
		switch SU2ElementType(nType) {
		case ELType_Triangle:
			nv = 3
		case ELType_Quadrilateral:
			nv = 4
		default:
			panic(fmt.Errorf("unable to deal with SU2 element type %d", nType))
		}
		if len(fields) < nv+1 {
			panic(fmt.Errorf("unable to read vertices of element %d", k))
		}
		EToV[k] = make([]int, nv)
		for i := 0; i < nv; i++ {
			if _, err = fmt.Sscanf(fields[i+1], "%d", &EToV[k][i]); err != nil {
				panic(err)
			}
		}
	}
	return
}

func getToken(reader *bufio.Reader) (token string) {
	var (
		line string
		err  error
	)
	line = getLineNoComments(reader)
	ind := strings.Index(line, "=")
	if ind < 0 {
		err = fmt.Errorf("badly formed input line [%s], should have an =", line)
		panic(err)
	}
	token = line[ind+1:]
	return
}

func readLabel(reader *bufio.Reader) (label string) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%s", &label); err != nil {
		err = fmt.Errorf("unable to read label from token: [%s]", token)
		panic(err)
	}
	label = strings.Trim(label, " ")
	return
}

func readNumber(reader *bufio.Reader) (num int) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
		panic(err)
	}
	return
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.Trim(getLine(reader), " ")
		if !strings.HasPrefix(line, "%") {
			return
		}
	}
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	line, err = reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("early end of file")
		}
		panic(err)
	}
	line = strings.TrimRight(line, "\r\n")
	return
}

func skipLines(n int, reader *bufio.Reader) {
	for i := 0; i < n; i++ {
		getLine(reader)
	}
}

func ReadSU2(filename string, verbose bool) (pm *geometry2D.PolyMesh, bcs BCEdges, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading SU2 file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return nil, nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	return ParseSU2(file, verbose)
}

/*
ParseSU2 reads a 2D SU2 mesh of triangles and quadrilaterals. Every marker edge must be a
boundary edge of the resulting mesh.
*/
func ParseSU2(r io.Reader, verbose bool) (pm *geometry2D.PolyMesh, bcs BCEdges, err error) {
	defer func() {
		if p := recover(); p != nil {
			pm, bcs = nil, nil
			err = fmt.Errorf("malformed SU2 input: %v", p)
		}
	}()
	reader := bufio.NewReader(r)
	dimensionality := readNumber(reader)
	if dimensionality != 2 {
		return nil, nil, fmt.Errorf("SU2 file has %d dimensional data, need 2", dimensionality)
	}
	K, EToV := readElements(reader)
	nodes := readVertices(reader)
	bcs = readBCs(reader)
	if verbose {
		fmt.Printf("Read %d elements, %d vertices, %d boundary markers\n", K, len(nodes), len(bcs))
	}
	if pm, err = geometry2D.NewPolyMeshFromElements(nodes, EToV); err != nil {
		return nil, nil, err
	}
	if err = checkBCs(pm, bcs); err != nil {
		return nil, nil, err
	}
	return
}

func checkBCs(pm *geometry2D.PolyMesh, bcs BCEdges) error {
	boundary := make(map[types.EdgeKey]bool, len(pm.BoundaryEdges))
	for _, e := range pm.BoundaryEdges {
		boundary[types.NewEdgeKey(pm.EdgeNodes[e])] = true
	}
	for label, edges := range bcs {
		for _, ei := range edges {
			if !boundary[ei.GetKey()] {
				return fmt.Errorf("marker %s edge %v is not on the mesh boundary", label, ei.GetVertices())
			}
		}
	}
	return nil
}
