// Command sam is the function packaged by the SAM template. It parses an
// optional JSON body and returns it as "received_data".
package main

import (
	"lambda-workshop/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var rt = server.NewRuntime("sam")

func init() {
	if _, err := rt.Container(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(rt.HandleAPIGateway)
}
