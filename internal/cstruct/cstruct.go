// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// The cstruct tool generates byte-slice backed accessors for packed C structs.
//
// The input is a C header with a single packed struct definition; the output
// is a Go file in the current directory named after the struct, defining the
// struct type as a []byte with a Get_<field> accessor per field and a
// <STRUCT>_SIZE constant.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"regexp"
	"strconv"
	"strings"
)

type field struct {
	name   string
	ctype  string
	count  int
	offset int
}

var typeSizes = map[string]int{
	"char":     1,
	"int8_t":   1,
	"uint8_t":  1,
	"int16_t":  2,
	"uint16_t": 2,
	"int32_t":  4,
	"uint32_t": 4,
	"int64_t":  8,
	"uint64_t": 8,
}

var goTypes = map[string]string{
	"char":     "byte",
	"int8_t":   "int8",
	"uint8_t":  "byte",
	"int16_t":  "int16",
	"uint16_t": "uint16",
	"int32_t":  "int32",
	"uint32_t": "uint32",
	"int64_t":  "int64",
	"uint64_t": "uint64",
}

var fieldRe = regexp.MustCompile(`^\s*(u?int(?:8|16|32|64)_t|char)\s+(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*;`)

func main() {
	pkgName := flag.String("pkg", "", "package name for the generated file")
	structName := flag.String("struct", "", "Go type name for the struct")
	input := flag.String("input", "", "C header file to parse")
	endianness := flag.String("endianness", "LittleEndian", "byte order: LittleEndian, BigEndian or NativeEndian")

	flag.Parse()

	if *pkgName == "" || *structName == "" || *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	contents, err := os.ReadFile(*input)
	if err != nil {
		fatalf("reading %s: %v", *input, err)
	}

	fields, size, err := parseFields(string(contents))
	if err != nil {
		fatalf("parsing %s: %v", *input, err)
	}

	src, err := generate(*pkgName, *structName, *input, *endianness, fields, size)
	if err != nil {
		fatalf("generating: %v", err)
	}

	output := strings.ToLower(*structName) + ".go"

	if err = os.WriteFile(output, src, 0o644); err != nil {
		fatalf("writing %s: %v", output, err)
	}
}

func parseFields(contents string) ([]field, int, error) {
	var (
		fields   []field
		offset   int
		inStruct bool
	)

	for _, line := range strings.Split(contents, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}

		if !inStruct {
			if strings.Contains(line, "struct") && strings.Contains(line, "{") {
				inStruct = true
			}

			continue
		}

		if strings.Contains(line, "}") {
			return fields, offset, nil
		}

		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				return nil, 0, fmt.Errorf("unsupported field: %q", strings.TrimSpace(line))
			}

			continue
		}

		count := 1

		if m[3] != "" {
			var err error

			count, err = strconv.Atoi(m[3])
			if err != nil {
				return nil, 0, err
			}
		}

		fields = append(fields, field{
			name:   m[2],
			ctype:  m[1],
			count:  count,
			offset: offset,
		})

		offset += typeSizes[m[1]] * count
	}

	return nil, 0, fmt.Errorf("no struct definition found")
}

func generate(pkgName, structName, input, endianness string, fields []field, size int) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by \"cstruct -pkg %s -struct %s -input %s -endianness %s\"; DO NOT EDIT.\n\n",
		pkgName, structName, input, endianness)
	fmt.Fprintf(&b, "package %s\n\n", pkgName)

	needsBinary := false

	for _, f := range fields {
		if f.count == 1 && typeSizes[f.ctype] > 1 {
			needsBinary = true
		}
	}

	if needsBinary {
		fmt.Fprintf(&b, "import \"encoding/binary\"\n\n")
	}

	fmt.Fprintf(&b, "// %s is a byte slice representing the %s file.\n", structName, input)
	fmt.Fprintf(&b, "type %s []byte\n\n", structName)

	binaryMethod := map[int]string{2: "Uint16", 4: "Uint32", 8: "Uint64"}

	for _, f := range fields {
		sz := typeSizes[f.ctype]

		fmt.Fprintf(&b, "// Get_%s returns the %s field.\n", f.name, f.name)
		fmt.Fprintf(&b, "func (s %s) Get_%s() ", structName, f.name)

		goType := goTypes[f.ctype]

		switch {
		case f.count > 1:
			fmt.Fprintf(&b, "[]byte {\n\treturn s[%d:%d]\n}\n\n", f.offset, f.offset+sz*f.count)
		case sz == 1 && goType == "byte":
			fmt.Fprintf(&b, "byte {\n\treturn s[%d]\n}\n\n", f.offset)
		case sz == 1:
			fmt.Fprintf(&b, "int8 {\n\treturn int8(s[%d])\n}\n\n", f.offset)
		case strings.HasPrefix(goType, "int"):
			fmt.Fprintf(&b, "%s {\n\treturn %s(binary.%s.%s(s[%d:%d]))\n}\n\n",
				goType, goType, endianness, binaryMethod[sz], f.offset, f.offset+sz)
		default:
			fmt.Fprintf(&b, "%s {\n\treturn binary.%s.%s(s[%d:%d])\n}\n\n",
				goType, endianness, binaryMethod[sz], f.offset, f.offset+sz)
		}
	}

	fmt.Fprintf(&b, "// %s_SIZE is the size of the %s struct.\n", strings.ToUpper(structName), structName)
	fmt.Fprintf(&b, "const %s_SIZE = %d\n", strings.ToUpper(structName), size)

	return format.Source([]byte(b.String()))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
