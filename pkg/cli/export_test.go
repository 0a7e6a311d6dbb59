package cli

var BuildUserForTest = buildUser
