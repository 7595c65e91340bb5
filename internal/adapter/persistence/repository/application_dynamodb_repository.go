package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"pa_dog_license/internal/domain/entities"
	"pa_dog_license/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultApplicationsTableName = "dog_license_applications"

type applicationItem struct {
	TrackingNumber string `dynamodbav:"tracking_number"`
	Status         string `dynamodbav:"status"`
	SubmittedAt    string `dynamodbav:"submitted_at"`

	OwnerFirstName string `dynamodbav:"owner_first_name"`
	OwnerLastName  string `dynamodbav:"owner_last_name"`
	OwnerAddress   string `dynamodbav:"owner_address"`
	OwnerCity      string `dynamodbav:"owner_city"`
	OwnerZipCode   string `dynamodbav:"owner_zip_code"`
	OwnerPhone     string `dynamodbav:"owner_phone"`
	OwnerEmail     string `dynamodbav:"owner_email"`

	DogName          string `dynamodbav:"dog_name"`
	DogBreed         string `dynamodbav:"dog_breed"`
	DogColor         string `dynamodbav:"dog_color"`
	DogGender        string `dynamodbav:"dog_gender"`
	DogAge           string `dynamodbav:"dog_age"`
	DogWeight        string `dynamodbav:"dog_weight"`
	IsSpayedNeutered string `dynamodbav:"is_spayed_neutered"`

	RabiesVaccinationDate   string `dynamodbav:"rabies_vaccination_date"`
	RabiesVaccinationExpiry string `dynamodbav:"rabies_vaccination_expiry"`
	VeterinarianName        string `dynamodbav:"veterinarian_name"`
	VeterinarianAddress     string `dynamodbav:"veterinarian_address"`

	LicensePeriod string `dynamodbav:"license_period"`
	LicenseFee    string `dynamodbav:"license_fee"`
}

// DynamoDBAPI is the subset of *dynamodb.Client the repository calls.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ApplicationDynamoRepository persists one item per application in DynamoDB.
//
// Table requirements:
//   - PK: tracking_number (string)
//
// The conditional put turns a tracking number collision into
// ErrDuplicateTrackingNumber instead of overwriting the earlier record.
type ApplicationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb DynamoDBAPI, tableName string) *ApplicationDynamoRepository {
	if tableName == "" {
		tableName = DefaultApplicationsTableName
	}
	return &ApplicationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ApplicationDynamoRepository) Append(ctx context.Context, a entities.Application) (entities.Application, error) {
	av, err := attributevalue.MarshalMap(toApplicationItem(a))
	if err != nil {
		return entities.Application{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tn)"),
		ExpressionAttributeNames: map[string]string{
			"#tn": "tracking_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Application{}, interfaces.ErrDuplicateTrackingNumber
		}
		return entities.Application{}, err
	}
	return a, nil
}

func (r *ApplicationDynamoRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tracking_number": &types.AttributeValueMemberS{Value: trackingNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, err
	}
	if len(out.Item) == 0 {
		return entities.Application{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it)
}

func toApplicationItem(a entities.Application) applicationItem {
	return applicationItem{
		TrackingNumber:          a.TrackingNumber,
		Status:                  string(a.Status),
		SubmittedAt:             formatTime(a.SubmittedAt),
		OwnerFirstName:          a.OwnerFirstName,
		OwnerLastName:           a.OwnerLastName,
		OwnerAddress:            a.OwnerAddress,
		OwnerCity:               a.OwnerCity,
		OwnerZipCode:            a.OwnerZipCode,
		OwnerPhone:              a.OwnerPhone,
		OwnerEmail:              a.OwnerEmail,
		DogName:                 a.DogName,
		DogBreed:                a.DogBreed,
		DogColor:                a.DogColor,
		DogGender:               string(a.DogGender),
		DogAge:                  floatToString(a.DogAge),
		DogWeight:               floatToString(a.DogWeight),
		IsSpayedNeutered:        a.IsSpayedNeutered,
		RabiesVaccinationDate:   a.RabiesVaccinationDate,
		RabiesVaccinationExpiry: a.RabiesVaccinationExpiry,
		VeterinarianName:        a.VeterinarianName,
		VeterinarianAddress:     a.VeterinarianAddress,
		LicensePeriod:           string(a.LicensePeriod),
		LicenseFee:              floatToString(a.LicenseFee),
	}
}

func fromApplicationItem(it applicationItem) (entities.Application, error) {
	age, err := strconv.ParseFloat(it.DogAge, 64)
	if err != nil {
		return entities.Application{}, fmt.Errorf("item %q: dog_age: %w", it.TrackingNumber, err)
	}
	weight, err := strconv.ParseFloat(it.DogWeight, 64)
	if err != nil {
		return entities.Application{}, fmt.Errorf("item %q: dog_weight: %w", it.TrackingNumber, err)
	}
	fee, err := strconv.ParseFloat(it.LicenseFee, 64)
	if err != nil {
		return entities.Application{}, fmt.Errorf("item %q: license_fee: %w", it.TrackingNumber, err)
	}
	return entities.Application{
		TrackingNumber:          it.TrackingNumber,
		OwnerFirstName:          it.OwnerFirstName,
		OwnerLastName:           it.OwnerLastName,
		OwnerAddress:            it.OwnerAddress,
		OwnerCity:               it.OwnerCity,
		OwnerZipCode:            it.OwnerZipCode,
		OwnerPhone:              it.OwnerPhone,
		OwnerEmail:              it.OwnerEmail,
		DogName:                 it.DogName,
		DogBreed:                it.DogBreed,
		DogColor:                it.DogColor,
		DogGender:               entities.DogGender(it.DogGender),
		DogAge:                  age,
		DogWeight:               weight,
		IsSpayedNeutered:        it.IsSpayedNeutered,
		RabiesVaccinationDate:   it.RabiesVaccinationDate,
		RabiesVaccinationExpiry: it.RabiesVaccinationExpiry,
		VeterinarianName:        it.VeterinarianName,
		VeterinarianAddress:     it.VeterinarianAddress,
		LicensePeriod:           entities.LicensePeriod(it.LicensePeriod),
		Status:                  entities.ApplicationStatus(it.Status),
		SubmittedAt:             parseTime(it.SubmittedAt),
		LicenseFee:              fee,
	}, nil
}
