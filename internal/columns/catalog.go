package columns

// RequiredColumns are always part of the generated sheet and never sent.
var RequiredColumns = []string{
	"顧客法人名",
	"担当者名（姓）",
	"担当者名（名）",
	"電話番号（数字だけハイフンなし）",
	"業種（選択式）",
}

// requiredHeaders is how the generation service writes RequiredColumns.
var requiredHeaders = []string{
	"顧客法人名",
	"担当者名（姓）",
	"担当者名（名）",
	"電話番号",
	"業種",
}

// DynamicColumn is one entry of the optional column catalog.
type DynamicColumn struct {
	Key    string
	Label  string
	Header string
}

var DynamicCatalog = []DynamicColumn{
	{Key: "prefecture", Label: "県域（47都道府県選択式）", Header: "県域"},
	{Key: "address", Label: "住所", Header: "住所"},
	{Key: "email", Label: "メールアドレス", Header: "メールアドレス"},
	{Key: "inflow_date", Label: "流入日", Header: "流入日"},
	{Key: "inflow_source", Label: "流入元", Header: "流入元"},
	{Key: "list_name", Label: "リスト名", Header: "リスト名"},
}

// Lookup returns the catalog entry for key.
func Lookup(key string) (DynamicColumn, bool) {
	for _, c := range DynamicCatalog {
		if c.Key == key {
			return c, true
		}
	}
	return DynamicColumn{}, false
}

func IsCatalogKey(key string) bool {
	_, ok := Lookup(key)
	return ok
}

// HeaderRow returns the header row a generated sheet is expected to start
// with: required headers, selected dynamic headers in selection order, then
// custom column names. Unknown keys fall back to the key itself.
func HeaderRow(dynamic []string, custom []CustomColumn) []string {
	headers := make([]string, 0, len(requiredHeaders)+len(dynamic)+len(custom))
	headers = append(headers, requiredHeaders...)
	for _, key := range dynamic {
		if c, ok := Lookup(key); ok {
			headers = append(headers, c.Header)
		} else {
			headers = append(headers, key)
		}
	}
	for _, c := range custom {
		headers = append(headers, c.Name)
	}
	return headers
}
