package wbdomain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString aceita tanto strings quanto números no JSON de origem.
// A API de estatísticas não é estável quanto ao tipo dos identificadores
// externos, então a conversão acontece uma única vez, aqui.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("valor não é string nem número: %s", string(data))
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// truncateDay reduz um timestamp ISO para a granularidade de dia (YYYY-MM-DD)
func truncateDay(value string) string {
	if len(value) > 10 {
		return value[:10]
	}
	return value
}
