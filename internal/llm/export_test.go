package llm

var ExtractJSON = extractJSON
