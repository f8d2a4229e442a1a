package engine_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/engine/mocks"
)

func TestMultiPresenterJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ok := mocks.NewMockPresenter(ctrl)
	bad := mocks.NewMockPresenter(ctrl)
	boom := errors.New("boom")

	ok.EXPECT().LoadScene("ending_dead").Return(nil)
	bad.EXPECT().LoadScene("ending_dead").Return(boom)

	err := engine.MultiPresenter{ok, bad}.LoadScene("ending_dead")
	if !errors.Is(err, boom) {
		t.Errorf("Expected joined error to wrap the failing presenter's error, got %v", err)
	}

	if err := (engine.MultiPresenter{}).LoadScene("x"); err != nil {
		t.Errorf("Expected nil for no presenters, got %v", err)
	}
}
