package data

var (
	simpleData = map[string]any{
		"string": "value",
		"int":    42,
		"bool":   true,
	}

	lessonData = map[string]any{
		"numbers": []any{1, 2, 3, 4, 5},
		"user": map[string]any{
			"name": "Alice",
			"age":  30,
			"role": "admin",
		},
	}
)
