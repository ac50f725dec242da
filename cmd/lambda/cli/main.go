// Command cli is the function deployed with the AWS CLI. It logs the event
// and returns it with a timestamp.
package main

import (
	"lambda-workshop/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var rt = server.NewRuntime("cli")

func init() {
	if _, err := rt.Container(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(rt.HandleEvent)
}
