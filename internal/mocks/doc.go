// Package mocks provides shared test doubles for interfaces used across the
// application.
//
// MockJWTService uses function fields with canned defaults; MockFacade is a
// testify mock.Mock whose expectations are declared with On(...).
//
//	jwt := &mocks.MockJWTService{Claims: &auth.Claims{UserID: id}}
//	facade := new(mocks.MockFacade)
//	facade.On("GetPlace", mock.Anything, placeID).Return(nil, store.ErrPlaceNotFound)
package mocks
