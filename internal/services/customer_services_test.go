package services

import (
	"testing"

	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCustomerBlanksToNull(t *testing.T) {
	empty := ""
	name := "Ada"
	c := &model.Customer{FirstName: &name, LastName: &empty, CustZip: &empty}

	normalizeCustomer(c)

	assert.Equal(t, "Ada", *c.FirstName)
	assert.Nil(t, c.LastName)
	assert.Nil(t, c.CustZip)
	assert.Nil(t, c.CustEmail)
}
