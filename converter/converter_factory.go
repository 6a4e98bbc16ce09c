package converter

import "fmt"

// Names все поддерживаемые форматы
var Names = []string{"json", "pjson", "xlsx", "pgsql"}

func Converter(converter string) (IConverter, error) {
	switch converter {
	case "json":
		return JSONConverter{}, nil
	case "pjson":
		return JSONConverter{Pretty: true}, nil
	case "xlsx":
		return XLSXConverter{}, nil
	case "pgsql":
		return PGSQLConverter{}, nil
	default:
		return nil, fmt.Errorf("unknown converter %q, expected one of %v", converter, Names)
	}
}
