package treemodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mzanella-labs/silva/internal/treemodel"
)

func TestTierNumGroups(t *testing.T) {
	assert.Equal(t, 0, treemodel.Tier(nil).NumGroups())
	assert.Equal(t, 2, treemodel.Tier{0, 1, 1, 2, 2}.NumGroups())
}

func TestTierValidateAcceptsWellFormedGroups(t *testing.T) {
	tier := treemodel.Tier{0, 1, 1, 2, 2, 2}
	assert.NoError(t, tier.Validate())
}

func TestTierValidateRejectsNegativeGroupID(t *testing.T) {
	tier := treemodel.Tier{0, -1}
	assert.ErrorIs(t, tier.Validate(), treemodel.ErrMalformedTier)
}

func TestTierValidateRejectsSingletonGroup(t *testing.T) {
	tier := treemodel.Tier{1, 0, 0}
	assert.ErrorIs(t, tier.Validate(), treemodel.ErrMalformedTier)
}
