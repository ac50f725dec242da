// Command console is the function pasted into the Lambda console editor.
// It logs the event and echoes it back under "input".
package main

import (
	"lambda-workshop/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var rt = server.NewRuntime("console")

func init() {
	if _, err := rt.Container(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(rt.HandleEvent)
}
