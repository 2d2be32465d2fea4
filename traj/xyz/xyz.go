package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/goconformer"
	v3 "github.com/rmera/goconformer/v3"
)

//The metadata keys recognized in comment lines. Only the key = value
//form is taken as metadata; a comment mentioning "Time" without an
//equals sign is just text.
var trajRE = regexp.MustCompile(`TRAJ\s*=\s*([+-]?\d+)`)
var timeRE = regexp.MustCompile(`Time\s*=\s*([+-]?\d*\.?\d+(?:[eE][+-]?\d+)?)`)

// ParseTraj extracts the trajectory number from a comment line carrying
// it in the TRAJ = n form. It returns false when the comment carries no
// such metadata.
func ParseTraj(comment string) (int, bool) {
	sm := trajRE.FindStringSubmatch(comment)
	if sm == nil {
		return 0, false
	}
	v, err := strconv.Atoi(sm[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseTime extracts the time from a comment line carrying it in the
// Time = t form. It returns false when the comment carries no such
// metadata.
func ParseTime(comment string) (float64, bool) {
	sm := timeRE.FindStringSubmatch(comment)
	if sm == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(sm[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

//Write!

type XYZW struct {
	f         *os.File
	zw        io.WriteCloser //the compressor, nil for plain files
	h         *bufio.Writer
	natoms    int
	elements  []string
	filename  string
	frames    int
	writeable bool
}

// NewWriter returns a writer of multi-geometry XYZ files for geometries
// with the given elements, to a file with the given name. Names ending
// in .gz or .zst/.zstd get the corresponding compression; anything else
// is written plain.
func NewWriter(name string, elements []string) (*XYZW, error) {
	if len(elements) == 0 {
		return nil, Error{"no elements given", name, []string{"NewWriter"}, true}
	}
	W := new(XYZW)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(a), nil }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		W.zw, err = gzipwriter(W.f)
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		W.zw, err = zstdwriter(W.f)
	}
	if err != nil {
		W.f.Close()
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	if W.zw != nil {
		W.h = bufio.NewWriter(W.zw)
	} else {
		W.h = bufio.NewWriter(W.f)
	}
	W.natoms = len(elements)
	W.elements = elements
	W.filename = name
	W.writeable = true
	return W, nil
}

// WNext writes one geometry to the file. The comment line carries the
// metadata in the TRAJ = n | Time = t fs | form, so reading the file
// back recovers it; if m is nil, default metadata for the current frame
// number is written. Coordinates are printed with as many decimals as
// needed to recover the exact float64 values.
func (W *XYZW) WNext(c *v3.Matrix, m *chem.Meta) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if c == nil {
		return Error{NilCoordinates, W.filename, []string{"WNext"}, true}
	}
	if v := c.NVecs(); v != W.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, W.natoms), W.filename, []string{"WNext"}, true}
	}
	if m == nil {
		m = chem.DefaultMeta(W.frames)
	}
	fmt.Fprintf(W.h, "%d\n", W.natoms)
	fmt.Fprintf(W.h, "TRAJ = %d | Time = %g fs |\n", m.Traj, m.Time)
	for i := 0; i < W.natoms; i++ {
		x := strconv.FormatFloat(c.At(i, 0), 'f', -1, 64)
		y := strconv.FormatFloat(c.At(i, 1), 'f', -1, 64)
		z := strconv.FormatFloat(c.At(i, 2), 'f', -1, 64)
		_, err := fmt.Fprintf(W.h, "%-2s %21s %21s %21s\n", W.elements[i], x, y, z)
		if err != nil {
			return Error{err.Error(), W.filename, []string{"WNext"}, true}
		}
	}
	W.frames++
	return nil
}

// Len returns the number of atoms per geometry in the file.
func (W *XYZW) Len() int {
	return W.natoms
}

// Close flushes and closes the file. The writer can not be used after
// this call.
func (W *XYZW) Close() {
	if !W.writeable {
		return
	}
	W.h.Flush()
	if W.zw != nil {
		W.zw.Close()
	}
	W.f.Close()
	W.writeable = false
}

// Write writes the whole geometry set to a file with the given name, in
// the format of WNext.
func Write(name string, G *chem.GeomSet) error {
	if G == nil || G.Len() == 0 {
		return Error{"nil or empty geometry set", name, []string{"Write"}, true}
	}
	W, err := NewWriter(name, G.Elements())
	if err != nil {
		return errDecorate(err, "Write")
	}
	defer W.Close()
	for i := 0; i < G.Len(); i++ {
		if err := W.WNext(G.Coords(i), G.Meta(i)); err != nil {
			return errDecorate(err, "Write")
		}
	}
	return nil
}

//Read!

type XYZR struct {
	f         *os.File
	zr        io.ReadCloser //the decompressor, nil for plain files
	h         *bufio.Reader
	filename  string
	natoms    int
	elements  []string
	meta      *chem.Meta
	first     *v3.Matrix //the block buffered when the file was opened
	firstmeta *chem.Meta
	buf       []float64
	frame     int //blocks read from the file so far
	nline     int //physical lines read so far
	readable  bool
}

//why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

// New opens an XYZ file for sequential reading, names ending in .gz or
// .zst/.zstd being decompressed on the fly. The first geometry block is
// read immediately, so Len and Elements give their final answers on a
// freshly opened reader; that block is still the one delivered by the
// first call to Next. A file with no geometry blocks at all yields a
// reader with Len 0 whose first Next signals a normal termination.
func New(name string) (*XYZR, error) {
	X := new(XYZR)
	X.natoms = -1 //just so we know if things don't work
	X.filename = name
	var err error
	X.f, err = os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"New"}, true}
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		return stdql{r.Close, r}, err
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		X.zr, err = gzreader(bufio.NewReader(X.f))
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		X.zr, err = zstdreader(bufio.NewReader(X.f))
	}
	if err != nil {
		X.f.Close()
		return nil, Error{err.Error(), name, []string{"New"}, true}
	}
	if X.zr != nil {
		X.h = bufio.NewReader(X.zr)
	} else {
		X.h = bufio.NewReader(X.f)
	}
	X.readable = true
	m, err := X.readBlock(nil)
	if err != nil {
		if _, ok := err.(chem.LastFrameError); ok {
			//an empty file: not an error here, the first Next will
			//signal the normal termination.
			X.natoms = 0
			return X, nil
		}
		X.Close()
		return nil, errDecorate(err, "New")
	}
	X.first = v3.Zeros(X.natoms)
	for i := 0; i < X.natoms; i++ {
		for j := 0; j < 3; j++ {
			X.first.Set(i, j, X.buf[3*i+j])
		}
	}
	X.firstmeta = m
	return X, nil
}

// Readable returns true if the handle is readable (if it is possible to
// call Next on it).
func (X *XYZR) Readable() bool {
	return X.readable
}

// Len returns the number of atoms per geometry in the file.
func (X *XYZR) Len() int {
	return X.natoms
}

// Elements returns the element symbols of the geometries in the file, in
// atom order. They come from the first block; later blocks must agree.
func (X *XYZR) Elements() []string {
	return X.elements
}

// Meta returns the metadata of the last geometry delivered by Next, or
// nil if no geometry has been delivered yet.
func (X *XYZR) Meta() *chem.Meta {
	return X.meta
}

// Next reads the next geometry into c, or discards it, while still
// validating it, if c is nil. At the end of the trajectory it returns a
// chem.LastFrameError and the reader becomes unreadable.
func (X *XYZR) Next(c *v3.Matrix) error {
	if !X.readable {
		return Error{TrajUnIniRead, X.filename, []string{"Next"}, true}
	}
	if c != nil && X.natoms > 0 && c.NVecs() != X.natoms {
		return Error{fmt.Sprintf("%d rows in the given matrix, but geometries have %d atoms", c.NVecs(), X.natoms), X.filename, []string{"Next"}, true}
	}
	if X.first != nil {
		if c != nil {
			c.Copy(X.first.Dense)
		}
		X.meta = X.firstmeta
		X.first = nil
		X.firstmeta = nil
		return nil
	}
	m, err := X.readBlock(c)
	if err != nil {
		if _, ok := err.(chem.LastFrameError); ok {
			X.Close()
			return errDecorate(err, "Next")
		}
		X.readable = false
		return errDecorate(err, "Next")
	}
	X.meta = m
	return nil
}

// NextConc reads as many geometries as elements the given slice has and
// returns a slice of channels, through each of which one of the
// geometries will be transmitted, in reading order.
func (X *XYZR) NextConc(frames []*v3.Matrix) ([]chan *v3.Matrix, error) {
	if !X.Readable() {
		return nil, Error{TrajUnIniRead, X.filename, []string{"NextConc"}, true}
	}
	framechans := make([]chan *v3.Matrix, len(frames))
	for key, v := range frames {
		if err := X.Next(v); err != nil {
			return nil, errDecorate(err, "NextConc")
		}
		framechans[key] = make(chan *v3.Matrix)
		go func(keep *v3.Matrix, pipe chan *v3.Matrix) {
			pipe <- keep
		}(v, framechans[key])
	}
	return framechans, nil
}

// Close closes the file. The reader can not be used after this call.
func (X *XYZR) Close() {
	if !X.readable {
		return
	}
	if X.zr != nil {
		X.zr.Close()
	}
	X.f.Close()
	X.readable = false
}

//reads one geometry block into the scratch buffer, and into c when c is
//not nil. Elements and coordinates are validated in either case. Blank
//lines are tolerated before the count line only.
func (X *XYZR) readBlock(c *v3.Matrix) (*chem.Meta, error) {
	var line string
	var err error
	//the count line
	for {
		line, err = X.h.ReadString('\n')
		if line != "" {
			X.nline++
		}
		if err != nil && err != io.EOF {
			return nil, Error{err.Error(), X.filename, []string{"readBlock"}, true}
		}
		if strings.TrimSpace(line) != "" {
			break
		}
		if err == io.EOF {
			return nil, newlastFrameError(X.filename, "readBlock")
		}
	}
	fields := strings.Fields(line)
	count, aerr := strconv.Atoi(fields[0])
	if aerr != nil {
		return nil, newFormatError(fmt.Sprintf("expected an atom count, got %q", fields[0]), X.filename, X.nline)
	}
	if count <= 0 {
		return nil, newFormatError(fmt.Sprintf("the atom count must be positive, got %d", count), X.filename, X.nline)
	}
	if X.natoms > 0 && count != X.natoms {
		return nil, newFormatError(fmt.Sprintf("all geometries must have the same atoms: got %d, want %d", count, X.natoms), X.filename, X.nline)
	}
	//the comment line, which is mandatory as a line but may be blank
	line, err = X.h.ReadString('\n')
	if line != "" {
		X.nline++
	}
	if err != nil && err != io.EOF {
		return nil, Error{err.Error(), X.filename, []string{"readBlock"}, true}
	}
	if line == "" && err == io.EOF {
		return nil, newFormatError("geometry block truncated: missing comment line", X.filename, X.nline)
	}
	comment := strings.TrimRight(line, "\r\n")
	m := chem.DefaultMeta(X.frame)
	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		m.Label = trimmed
	}
	if v, ok := ParseTraj(comment); ok {
		m.Traj = v
	}
	if v, ok := ParseTime(comment); ok {
		m.Time = v
	}
	//the atom lines
	firstframe := X.elements == nil
	if firstframe {
		X.elements = make([]string, 0, count)
		X.buf = make([]float64, 3*count)
	}
	for i := 0; i < count; i++ {
		line, err = X.h.ReadString('\n')
		if line != "" {
			X.nline++
		}
		if err != nil && err != io.EOF {
			return nil, Error{err.Error(), X.filename, []string{"readBlock"}, true}
		}
		if strings.TrimSpace(line) == "" {
			if err == io.EOF {
				return nil, newFormatError(fmt.Sprintf("geometry block truncated: %d atom lines found, %d expected", i, count), X.filename, X.nline)
			}
			return nil, newFormatError("blank line inside a geometry block", X.filename, X.nline)
		}
		fields = strings.Fields(line)
		if len(fields) < 4 {
			return nil, newFormatError(fmt.Sprintf("an atom line needs an element and 3 coordinates, got %q", strings.TrimSpace(line)), X.filename, X.nline)
		}
		if firstframe {
			X.elements = append(X.elements, fields[0])
		} else if X.elements[i] != fields[0] {
			return nil, newFormatError(fmt.Sprintf("the element of atom %d changed from %s to %s", i, X.elements[i], fields[0]), X.filename, X.nline)
		}
		for j := 0; j < 3; j++ {
			v, perr := strconv.ParseFloat(fields[j+1], 64)
			if perr != nil {
				return nil, newCoordinateError(fields[j+1], X.filename, i, X.nline)
			}
			X.buf[3*i+j] = v
		}
	}
	if firstframe {
		X.natoms = count
	}
	if c != nil {
		for i := 0; i < count; i++ {
			for j := 0; j < 3; j++ {
				c.Set(i, j, X.buf[3*i+j])
			}
		}
	}
	X.frame++
	return m, nil
}

// Read eagerly loads all the geometries of the given files into one
// geometry set, in file order and, within each file, in block order.
// All the files must carry the same atoms. Files without any geometry
// block contribute nothing; if the whole load resolves to zero
// geometries, a chem.EmptyInputError is returned. Metadata defaults
// (trajectory 0, the block index as time) restart on each file.
func Read(files ...string) (*chem.GeomSet, error) {
	if len(files) == 0 {
		return nil, chem.NewEmptyInputError(0, "xyz.Read")
	}
	var G *chem.GeomSet
	for _, name := range files {
		r, err := New(name)
		if err != nil {
			return nil, errDecorate(err, "Read")
		}
		if r.Len() == 0 {
			r.Close()
			continue
		}
		if G == nil {
			G = chem.NewGeomSet(r.Elements())
		} else if !sameElements(G.Elements(), r.Elements()) {
			r.Close()
			return nil, newFormatError("elements differ from those of the preceding files", name, 0)
		}
		for {
			c := v3.Zeros(r.Len())
			err := r.Next(c)
			if err != nil {
				if _, ok := err.(chem.LastFrameError); ok {
					break
				}
				r.Close()
				return nil, errDecorate(err, "Read")
			}
			if aerr := G.Append(c, r.Meta()); aerr != nil {
				r.Close()
				return nil, errDecorate(aerr, "Read")
			}
		}
		r.Close()
	}
	if G == nil || G.Len() == 0 {
		return nil, chem.NewEmptyInputError(len(files), "Read")
	}
	return G, nil
}

func sameElements(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}

//Errors

//errDecorate asserts that the error implements chem.Error and decorates
//it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(chem.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for XYZ trajectory errors. It fulfills
//chem.Error and chem.TrajError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "xyz") associated to the error
func (err Error) Format() string { return "xyz" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	NilCoordinates = "Given nil coordinates"
	EOF            = "EOF"
)

//FormatError reports a structurally malformed XYZ file: a bad count
//line, a truncated block, a changed element, too few columns. It carries
//the physical line of the problem, counted from 1.
type FormatError struct {
	message  string
	filename string
	line     int
	deco     []string
}

func newFormatError(message, filename string, line int) *FormatError {
	return &FormatError{message: message, filename: filename, line: line}
}

func (err *FormatError) Error() string {
	if err.line <= 0 {
		return fmt.Sprintf("xyz file %s: %s", err.filename, err.message)
	}
	return fmt.Sprintf("xyz file %s, line %d: %s", err.filename, err.line, err.message)
}

func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err *FormatError) FileName() string { return err.filename }

//Format returns the format of the file (always "xyz") associated to the error
func (err *FormatError) Format() string { return "xyz" }

//Critical returns true. A format error always stops the reading.
func (err *FormatError) Critical() bool { return true }

//Line returns the physical line, counted from 1, where the problem was
//found.
func (err *FormatError) Line() int { return err.line }

//CoordinateError reports a coordinate field that could not be parsed as
//a number.
type CoordinateError struct {
	value    string
	filename string
	atom     int
	line     int
	deco     []string
}

func newCoordinateError(value, filename string, atom, line int) *CoordinateError {
	return &CoordinateError{value: value, filename: filename, atom: atom, line: line}
}

func (err *CoordinateError) Error() string {
	return fmt.Sprintf("xyz file %s, line %d: can't parse coordinate %q for atom %d", err.filename, err.line, err.value, err.atom)
}

func (err *CoordinateError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err *CoordinateError) FileName() string { return err.filename }

//Format returns the format of the file (always "xyz") associated to the error
func (err *CoordinateError) Format() string { return "xyz" }

//Critical returns true. A coordinate error always stops the reading.
func (err *CoordinateError) Critical() bool { return true }

//Line returns the physical line, counted from 1, where the problem was
//found.
func (err *CoordinateError) Line() int { return err.line }

//Atom returns the index, within its geometry, of the atom with the
//unparseable coordinate.
func (err *CoordinateError) Atom() int { return err.atom }

//lastFrameError implements chem.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "xyz" }

func (E lastFrameError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
