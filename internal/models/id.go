package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ID é o identificador canônico das entidades (inteiro).
// A API upstream serializa ids ora como número, ora como string;
// normalizamos aqui na borda do JSON.
type ID int64

func (i *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %q", s)
	}

	*i = ID(v)
	return nil
}

func (i ID) String() string {
	return strconv.FormatInt(int64(i), 10)
}
