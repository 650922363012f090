package config

import (
	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
)

func NewElasticClient(elasticUrl string) (*elastic.Client, error) {
	client, err := elastic.NewClient(elastic.SetURL(elasticUrl), elastic.SetSniff(false))
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to elasticsearch at %s", elasticUrl)
	}
	return client, nil
}
