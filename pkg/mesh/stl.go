package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/geom"
)

// binary STL layout: 80-byte header, uint32 triangle count, then one
// 50-byte record per triangle (normal, three vertices, attribute word).
type stlRecord struct {
	Normal [3]float32
	Verts  [3][3]float32
	Attr   uint16
}

const stlRecordSize = 50

// LoadSTL reads an STL file, autodetecting ASCII and binary encodings.
func LoadSTL(path string) ([]Triangle, error) {
	if err := errors.ValidateInputFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadSTL(f)
}

// ReadSTL decodes STL data from r, autodetecting the encoding.
//
// Detection follows the usual convention: a file is ASCII if it starts
// with "solid" and contains a "facet" keyword. Binary files may also
// begin with "solid" in their free-form header, so the keyword check is
// what decides.
func ReadSTL(r io.Reader) ([]Triangle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSTL, err, "read STL data")
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSTL, "empty STL input")
	}

	if isASCIISTL(data) {
		return readASCII(data)
	}
	return readBinary(data)
}

func isASCIISTL(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.HasPrefix(bytes.TrimLeft(head, " \t\r\n"), []byte("solid")) &&
		bytes.Contains(head, []byte("facet"))
}

func readBinary(data []byte) ([]Triangle, error) {
	if len(data) < 84 {
		return nil, errors.New(errors.ErrCodeInvalidSTL,
			"binary STL too short: %d bytes", len(data))
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	body := data[84:]
	if uint64(len(body)) < uint64(count)*stlRecordSize {
		return nil, errors.New(errors.ErrCodeInvalidSTL,
			"binary STL truncated: header declares %d triangles", count)
	}

	r := bytes.NewReader(body)
	tris := make([]Triangle, 0, count)
	var rec stlRecord
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSTL, err, "triangle %d", i)
		}
		tris = append(tris, Triangle{
			V1: vec3f(rec.Verts[0]),
			V2: vec3f(rec.Verts[1]),
			V3: vec3f(rec.Verts[2]),
		})
	}
	return tris, nil
}

func readASCII(data []byte) ([]Triangle, error) {
	var tris []Triangle
	var pts []geom.Vec3

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "vertex" {
			continue
		}
		if len(fields) != 4 {
			return nil, errors.New(errors.ErrCodeInvalidSTL,
				"line %d: vertex needs 3 coordinates, got %d", line, len(fields)-1)
		}
		var p geom.Vec3
		var err error
		if p.X, err = strconv.ParseFloat(fields[1], 64); err == nil {
			if p.Y, err = strconv.ParseFloat(fields[2], 64); err == nil {
				p.Z, err = strconv.ParseFloat(fields[3], 64)
			}
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSTL, err, "line %d: bad coordinate", line)
		}
		pts = append(pts, p)
		if len(pts) == 3 {
			tris = append(tris, Triangle{V1: pts[0], V2: pts[1], V3: pts[2]})
			pts = pts[:0]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSTL, err, "scan ASCII STL")
	}
	if len(pts) != 0 {
		return nil, errors.New(errors.ErrCodeInvalidSTL,
			"ASCII STL ends mid-facet with %d dangling vertices", len(pts))
	}
	if len(tris) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSTL, "ASCII STL contains no facets")
	}
	return tris, nil
}

func vec3f(v [3]float32) geom.Vec3 {
	return geom.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
