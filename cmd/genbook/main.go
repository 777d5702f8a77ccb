package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"chessengine/engine"
	"chessengine/position"
)

// record is one (hash, raw Polyglot move) pair pending a sorted write.
type record struct {
	hash uint64
	raw  uint16
}

func main() {
	input := flag.String("in", "", "Input file: one game per line, whitespace-separated UCI moves from the start position")
	output := flag.String("out", engine.DefaultBookPath, "Output Polyglot-shaped book file")
	maxPly := flag.Int("maxply", 10, "Only record positions at or before this ply")

	flag.Parse()

	if *input == "" {
		fmt.Println("Usage: genbook -in <games.txt> -out <opening_book.bin> [-maxply N]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	records, err := buildRecords(*input, *maxPly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genbook: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "genbook: no usable positions found in input")
		os.Exit(1)
	}

	if err := writeBook(*output, records); err != nil {
		fmt.Fprintf(os.Stderr, "genbook: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d records to %s\n", len(records), *output)
}

// buildRecords replays each game line from the starting position, recording
// (hash-before-move, move) at every ply up to maxPly.
func buildRecords(path string, maxPly int) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var records []record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		records = append(records, replayGame(line, maxPly)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].hash < records[j].hash })
	return records, nil
}

func replayGame(line string, maxPly int) []record {
	var out []record
	p := position.NewInitialPosition()
	for _, tok := range strings.Fields(line) {
		if p.Ply > maxPly {
			break
		}
		from, to, ok := parseUCIMove(tok)
		if !ok {
			break
		}
		move := position.Move{From: from, To: to}
		if !position.IsLegal(p, move) {
			break
		}
		out = append(out, record{hash: p.Hash, raw: engine.EncodeBookMove(move, 0)})
		p.ApplyMove(move, true)
	}
	return out
}

func parseUCIMove(s string) (position.Coordinate, position.Coordinate, bool) {
	if len(s) < 4 {
		return position.NullCoordinate, position.NullCoordinate, false
	}
	from, err := position.ParseCoordinate(s[0:2])
	if err != nil {
		return position.NullCoordinate, position.NullCoordinate, false
	}
	to, err := position.ParseCoordinate(s[2:4])
	if err != nil {
		return position.NullCoordinate, position.NullCoordinate, false
	}
	return from, to, true
}

// writeBook emits one 16-byte big-endian record per entry: {hash, move,
// weight, learn}, weight fixed at 1 and learn at 0 since this tool has no
// game-outcome data to weight by.
func writeBook(path string, records []record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var buf [16]byte
	for _, r := range records {
		binary.BigEndian.PutUint64(buf[0:8], r.hash)
		binary.BigEndian.PutUint16(buf[8:10], r.raw)
		binary.BigEndian.PutUint16(buf[10:12], 1)
		binary.BigEndian.PutUint32(buf[12:16], 0)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return w.Flush()
}
