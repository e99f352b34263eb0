package providerRepo

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilter_QuotesQueryMetacharacters(t *testing.T) {
	filter := searchFilter(SearchCriteria{Query: "salon ("})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	rx := or[0].(bson.M)["salonName"].(bson.M)
	pattern := rx["$regex"].(string)
	assert.Equal(t, `salon \(`, pattern)

	_, err := regexp.Compile(pattern)
	assert.NoError(t, err)
}

func TestSearchFilter_QuotesCityFilter(t *testing.T) {
	filter := searchFilter(SearchCriteria{City: "Cluj (centru)"})

	city := filter["city"].(bson.M)
	pattern := city["$regex"].(string)
	assert.Equal(t, `^Cluj \(centru\)$`, pattern)

	_, err := regexp.Compile(pattern)
	assert.NoError(t, err)
}
