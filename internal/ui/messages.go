package ui

// User-facing texts.
const (
	PlanLoadingText   = "Searching and extracting web content, please wait..."
	PlanFailedMessage = "Error generating plan, please try again later"
	PlanErrorPrefix   = "Error generating plan: "
	planTimeoutFormat = "Request timed out (over %d seconds). This may be normal, since several web pages have to be searched and extracted. Please try again later."

	PlanUnreachableMessage = "Cannot connect to the server. Please check:\n" +
		"1. The server is running (run `tripplan serve`)\n" +
		"2. The server address is correct\n" +
		"3. The network connection is working"

	SearchBusyLabel   = "Searching and summarizing, please wait..."
	EmptyQueryMessage = "Please enter a search keyword"
	SearchErrorPrefix = "Error while searching: "

	SearchUnreachableMessage = "Cannot connect to the server. Please check:\n" +
		"1. The server is running\n" +
		"2. The network connection is working\n" +
		"3. The server address is correct"

	CopyFailedMessage = "Copy failed, please select the text and copy it manually"
)
