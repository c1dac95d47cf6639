package hidden_api
