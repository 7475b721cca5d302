package words

var basicWords = []string{
	"python", "programming", "computer", "keyboard", "monitor",
	"software", "hardware", "internet", "website", "database",
	"function", "variable", "boolean", "integer", "string",
}

var intermediatePhrases = []string{
	"hello world", "computer science", "software development",
	"artificial intelligence", "machine learning", "data structure",
	"object oriented", "version control", "user interface",
}
