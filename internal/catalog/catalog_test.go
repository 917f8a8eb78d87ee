package catalog

import "testing"

func TestMilestoneStructure(t *testing.T) {
	milestones := All()
	if len(milestones) != 6 {
		t.Fatalf("got %d milestones, want 6", len(milestones))
	}
	for _, m := range milestones {
		if len(m.Topics) != len(milestones[0].Topics) && len(m.Topics) < 5 {
			t.Errorf("milestone %d has %d topics, want at least 5", m.ID, len(m.Topics))
		}
		for _, topic := range m.Topics {
			if topic.ID/100 != m.ID {
				t.Errorf("topic %d filed under milestone %d", topic.ID, m.ID)
			}
			if topic.Weight < 1.0 || topic.Weight > 1.5 {
				t.Errorf("topic %d weight %v outside [1.0, 1.5]", topic.ID, topic.Weight)
			}
		}
	}
}

func TestTopicLookup(t *testing.T) {
	topic, parent, ok := TopicByID(305)
	if !ok {
		t.Fatal("topic 305 not found")
	}
	if topic.Name != "Seating Arrangement 1" || topic.Weight != 1.5 {
		t.Errorf("topic 305 = %+v, want Seating Arrangement 1 at weight 1.5", topic)
	}
	if parent.ID != 3 {
		t.Errorf("topic 305 parent milestone = %d, want 3", parent.ID)
	}

	if _, _, ok := TopicByID(999); ok {
		t.Error("lookup of unknown topic 999 succeeded")
	}

	if _, ok := MilestoneByID(0); ok {
		t.Error("lookup of milestone 0 succeeded")
	}
}

func TestTopicWeightDefaultsToOne(t *testing.T) {
	if w := TopicWeight(101); w != 1.0 {
		t.Errorf("weight(101) = %v, want 1.0", w)
	}
	if w := TopicWeight(999); w != 1.0 {
		t.Errorf("weight of unknown topic = %v, want 1.0 default", w)
	}
}
