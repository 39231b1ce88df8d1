package i18n

// Translator retrieves localized messages for validation error codes.
// data carries the message parameters (for example "limit", "value" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	d := func(k string) string { return data[k] }
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return d("type") + " 型の JSON 値が必要です: " + d("value")
		case "not_integer":
			return "整数ではありません: " + d("value")
		case "maximum":
			return "最大値を超えています (" + d("op") + d("limit") + " である必要があります)"
		case "minimum":
			return "最小値を下回っています (" + d("op") + d("limit") + " である必要があります)"
		case "multiple_of":
			return d("limit") + " の倍数が必要ですが " + d("value") + " でした"
		case "max_length":
			return "文字列が長すぎます (" + d("limit") + " 文字以下である必要があります)"
		case "min_length":
			return "文字列が短すぎます (" + d("limit") + " 文字以上である必要があります)"
		case "pattern":
			return "文字列がパターン " + d("pattern") + " に一致しません"
		case "max_items":
			return "配列の要素数が不正です (" + d("limit") + " 以下である必要があります)"
		case "min_items":
			return "配列の要素数が不正です (" + d("limit") + " 以上である必要があります)"
		case "tuple_size":
			return "配列の要素数が不正です (ちょうど " + d("limit") + " である必要があります)"
		case "unique_items":
			return "配列の要素は一意である必要があります"
		case "max_properties":
			return "オブジェクトのプロパティ数が不正です (" + d("limit") + " 以下である必要があります)"
		case "min_properties":
			return "オブジェクトのプロパティ数が不正です (" + d("limit") + " 以上である必要があります)"
		case "required":
			return "必須プロパティ " + d("name") + " がオブジェクトに見つかりません"
		case "invalid_enum":
			return d("list") + " のいずれかが必要ですが " + d("value") + " でした"
		case "unknown_schema":
			return "未知のスキーマ " + d("name")
		case "cyclic_reference":
			return "循環参照 " + d("name")
		case "invalid_schema":
			return "不正なスキーマ: " + d("reason")
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "expected JSON value of type " + d("type") + ": " + d("value")
		case "not_integer":
			return "not an integer: " + d("value")
		case "maximum":
			return "exceeds maximum (should be " + d("op") + d("limit") + ")"
		case "minimum":
			return "below minimum (should be " + d("op") + d("limit") + ")"
		case "multiple_of":
			return "expected a multiple of " + d("limit") + " but got " + d("value")
		case "max_length":
			return "string is too long (should be at most " + d("limit") + " characters)"
		case "min_length":
			return "string is too short (should be at least " + d("limit") + " characters)"
		case "pattern":
			return "string does not match pattern " + d("pattern")
		case "max_items":
			return "array size is invalid (should be <=" + d("limit") + ")"
		case "min_items":
			return "array size is invalid (should be >=" + d("limit") + ")"
		case "tuple_size":
			return "array size is invalid (should be exactly " + d("limit") + ")"
		case "unique_items":
			return "array is expected to contain unique items, but it does not"
		case "max_properties":
			return "object size is invalid (should be <=" + d("limit") + ")"
		case "min_properties":
			return "object size is invalid (should be >=" + d("limit") + ")"
		case "required":
			return "property " + d("name") + " is required, but not found in object"
		case "invalid_enum":
			return "expected one of " + d("list") + " but got " + d("value")
		case "unknown_schema":
			return "unknown schema " + d("name")
		case "cyclic_reference":
			return "cyclic reference " + d("name")
		case "invalid_schema":
			return "invalid schema: " + d("reason")
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// English returns the built-in English catalog regardless of SetLanguage.
func English() Translator { return dictTranslator{lang: "en"} }

// Japanese returns the built-in Japanese catalog.
func Japanese() Translator { return dictTranslator{lang: "ja"} }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
