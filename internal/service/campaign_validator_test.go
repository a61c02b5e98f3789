package service

import (
	"testing"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
)

func completeCampaign() *models.Campaign {
	starts := time.Now()
	ends := starts.Add(30 * 24 * time.Hour)
	return &models.Campaign{
		ID:       10,
		Title:    "Verano 2x1",
		StartsAt: &starts,
		EndsAt:   &ends,
		Channels: models.StringSlice{"EMAIL", "WHATSAPP"},
	}
}

func percentReward() *models.Reward {
	return &models.Reward{
		Type:        constants.RewardTypePercentDiscount,
		Value:       models.NewMoneyFromFloat(20),
		Description: "20% de descuento",
	}
}

func TestValidateCompleteCampaign(t *testing.T) {
	validator := NewCampaignValidator()

	result := validator.Validate(completeCampaign(), percentReward())
	if !result.ConfigComplete {
		t.Fatalf("want complete, missing: %v", result.MissingItems)
	}
	if len(result.MissingItems) != 0 {
		t.Fatalf("missing items want empty got %v", result.MissingItems)
	}
	if result.Severity != constants.CompletenessSeverityNone {
		t.Fatalf("severity want NONE got %s", result.Severity)
	}
	if result.CampaignID != 10 {
		t.Fatalf("campaign id want 10 got %d", result.CampaignID)
	}
}

func TestValidateMissingItemsKeepFixedOrder(t *testing.T) {
	validator := NewCampaignValidator()

	campaign := &models.Campaign{ID: 11}
	result := validator.Validate(campaign, nil)

	want := []string{
		MissingCampaignTitle,
		MissingCampaignSchedule,
		MissingCampaignChannels,
		MissingCampaignReward,
	}
	if len(result.MissingItems) != len(want) {
		t.Fatalf("missing items want %d got %v", len(want), result.MissingItems)
	}
	for i, item := range want {
		if result.MissingItems[i] != item {
			t.Fatalf("position %d want %s got %s", i, item, result.MissingItems[i])
		}
	}
	if result.ConfigComplete {
		t.Fatal("want incomplete")
	}
	if result.Severity != constants.CompletenessSeverityActionRequired {
		t.Fatalf("severity want ACTION_REQUIRED got %s", result.Severity)
	}
}

func TestValidateChannelsAndRewardMissingInOrder(t *testing.T) {
	validator := NewCampaignValidator()

	campaign := completeCampaign()
	campaign.Channels = nil
	result := validator.Validate(campaign, nil)

	if len(result.MissingItems) != 2 {
		t.Fatalf("missing items want 2 got %v", result.MissingItems)
	}
	if result.MissingItems[0] != MissingCampaignChannels || result.MissingItems[1] != MissingCampaignReward {
		t.Fatalf("want channels then reward got %v", result.MissingItems)
	}
}

func TestValidateEndBeforeStartIsIncompleteSchedule(t *testing.T) {
	validator := NewCampaignValidator()

	campaign := completeCampaign()
	ends := campaign.StartsAt.Add(-time.Hour)
	campaign.EndsAt = &ends

	result := validator.Validate(campaign, percentReward())
	if len(result.MissingItems) != 1 || result.MissingItems[0] != MissingCampaignSchedule {
		t.Fatalf("want schedule missing got %v", result.MissingItems)
	}
}

func TestValidateNoRewardAckSatisfiesRewardCheck(t *testing.T) {
	validator := NewCampaignValidator()

	campaign := completeCampaign()
	campaign.NoRewardAck = true

	result := validator.Validate(campaign, nil)
	if !result.ConfigComplete {
		t.Fatalf("acknowledged no-reward campaign want complete, missing: %v", result.MissingItems)
	}

	noneReward := &models.Reward{Type: constants.RewardTypeNone}
	campaign.NoRewardAck = false
	result = validator.Validate(campaign, noneReward)
	if result.ConfigComplete {
		t.Fatal("NONE reward without acknowledgment want incomplete")
	}
	if result.MissingItems[len(result.MissingItems)-1] != MissingCampaignReward {
		t.Fatalf("want reward missing got %v", result.MissingItems)
	}
}

func TestValidateNilCampaignReportsEverything(t *testing.T) {
	validator := NewCampaignValidator()

	result := validator.Validate(nil, nil)
	if result.ConfigComplete {
		t.Fatal("nil campaign want incomplete")
	}
	if len(result.MissingItems) != 4 {
		t.Fatalf("missing items want 4 got %v", result.MissingItems)
	}
}
