package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"outreach-api/internal/handlers"
	"outreach-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return lambda.InternalError(), nil
	}

	req := lambda.FromAPIGateway(event)
	geocodeHandler := handlers.NewGeocodeHandler(container.GeocodeService)

	resp, err := geocodeHandler.HandleGeocode(ctx, req)
	if err != nil {
		container.Logger.WithFields(logrus.Fields{
			"request_id": req.RequestID,
			"error":      err.Error(),
		}).Error("Geocode handler failed")
		return lambda.InternalError(), nil
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	manager := lambda.GetConnectionManager()
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(manager.Shutdown))
}
