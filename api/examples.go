package api

import "errors"

var errNotUint = errors.New("api: not a non-negative integer")

// sampleExample is one bundled snippet the API exposes via
// /api/v1/examples.
type sampleExample struct {
	Name        string
	Description string
	Source      string
}

var sampleExamples = []sampleExample{
	{
		Name:        "hello",
		Description: "A minimal function with a string literal and a documentation comment.",
		Source: "/// Prints a greeting.\n" +
			"fn main() {\n" +
			"    let message = \"Hello, Weave!\\n\";\n" +
			"    print(message);\n" +
			"}\n",
	},
	{
		Name:        "numbers",
		Description: "Integer and float literals with radix prefixes, separators, and suffixes.",
		Source: "fn constants() {\n" +
			"    let decimal = 1_000_000u64;\n" +
			"    let hex = 0xBEEF_BABEu64;\n" +
			"    let bin = 0b1010_0101u8;\n" +
			"    let pi = 3.14159f64;\n" +
			"}\n",
	},
	{
		Name:        "struct",
		Description: "A struct definition exercising keywords, delimiters, and punctuation.",
		Source: "struct Point {\n" +
			"    x: f32,\n" +
			"    y: f32,\n" +
			"}\n\n" +
			"impl Point {\n" +
			"    fn length(self) -> f32 {\n" +
			"        self.x * self.x + self.y * self.y\n" +
			"    }\n" +
			"}\n",
	},
}
