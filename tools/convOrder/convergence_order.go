package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study, as written by gomhd norms")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, names, err := readCSV(f)
	if err != nil {
		panic(err)
	}
	for _, key := range sortedKeys(studies) {
		cs := studies[key]
		fmt.Printf("Mesh = %s, Case = %s\n", cs.family, cs.caseName)
		fmt.Printf("%4s %12s", "N", "h")
		for _, name := range names {
			fmt.Printf(" %12s %6s", name, "order")
		}
		fmt.Printf("\n")
		orders := cs.Orders()
		for i := range cs.h {
			fmt.Printf("%4d %12.5e", cs.N[i], cs.h[i])
			for j := range names {
				if i == 0 {
					fmt.Printf(" %12.5e %6s", cs.errors[i][j], "-")
				} else {
					fmt.Printf(" %12.5e %6.2f", cs.errors[i][j], orders[i-1][j])
				}
			}
			fmt.Printf("\n")
		}
	}
}

type ConvergenceStudy struct {
	family, caseName string
	N                []int
	h                []float64
	errors           [][]float64
}

func NewConvergenceStudy(family, caseName string) *ConvergenceStudy {
	return &ConvergenceStudy{
		family:   family,
		caseName: caseName,
	}
}

func (cs *ConvergenceStudy) Add(N int, h float64, errors []float64) {
	cs.N = append(cs.N, N)
	cs.h = append(cs.h, h)
	cs.errors = append(cs.errors, errors)
}

// Orders is log(e_i/e_i+1)/log(h_i/h_i+1) between successive refinements, NaN when either error is zero
func (cs *ConvergenceStudy) Orders() (orders [][]float64) {
	for i := 1; i < len(cs.h); i++ {
		row := make([]float64, len(cs.errors[i]))
		for j := range row {
			e0, e1 := cs.errors[i-1][j], cs.errors[i][j]
			if e0 == 0 || e1 == 0 {
				row[j] = math.NaN()
				continue
			}
			row[j] = math.Log(e0/e1) / math.Log(cs.h[i-1]/cs.h[i])
		}
		orders = append(orders, row)
	}
	return
}

// readCSV groups rows by family and case; the error columns follow family, case, N, h, ndof
func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, names []string, err error) {
	var (
		records [][]string
		cs      *ConvergenceStudy
		ok      bool
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(bufio.NewReader(r)).ReadAll(); err != nil {
		return
	}
	if len(records) == 0 || len(records[0]) < 6 {
		return nil, nil, fmt.Errorf("missing or short header")
	}
	names = records[0][5:]
	for i, rec := range records[1:] {
		var (
			N   int
			h   float64
			row = make([]float64, len(names))
		)
		if N, err = strconv.Atoi(rec[2]); err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if h, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		for j := range row {
			if row[j], err = strconv.ParseFloat(rec[5+j], 64); err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		key := rec[0] + "/" + rec[1]
		if cs, ok = studies[key]; !ok {
			cs = NewConvergenceStudy(rec[0], rec[1])
			studies[key] = cs
		}
		cs.Add(N, h, row)
	}
	return
}

func sortedKeys(studies map[string]*ConvergenceStudy) (keys []string) {
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
