// Command cdk is the function deployed by the CDK stack behind an API
// Gateway proxy integration.
package main

import (
	"lambda-workshop/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var rt = server.NewRuntime("cdk")

func init() {
	if _, err := rt.Container(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(rt.HandleAPIGateway)
}
