package main

import (
	"context"
	"etfbuilder/api"
	"etfbuilder/cmd"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func newLambdaHandler(apiHandler *api.ApiHandler) lambdaHandler {
	return lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	apiHandler, _, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	lambda.Start(newLambdaHandler(apiHandler).Handler)
}
