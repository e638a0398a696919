package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/tuan-design/miniappdesign/pkg/relay"
)

func main() {
	forwarder := relay.NewForwarder()
	lambda.Start(forwarder.Handle)
}
